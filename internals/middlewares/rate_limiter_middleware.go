package middlewares

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// ProviderCallbackPrefixes are never rate limited: providers retry from a few
// fixed IPs and must always get their acknowledgment.
var ProviderCallbackPrefixes = []string{
	"/api/payments/callback/",
	"/api/payments/webhook/",
}

func isProviderCallback(c *fiber.Ctx) bool {
	for _, p := range ProviderCallbackPrefixes {
		if strings.HasPrefix(c.Path(), p) {
			return true
		}
	}
	return false
}

func newIPLimiter(max int, window time.Duration, message string, skip func(*fiber.Ctx) bool) fiber.Handler {
	return limiter.New(limiter.Config{
		Next:       skip,
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status":  "fail",
				"message": message,
			})
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newIPLimiter(100, 1*time.Minute, "Too many requests. Please try again later.", isProviderCallback)
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return newIPLimiter(5, 1*time.Minute, "Too many login attempts. Please try again in a moment.", nil)
}

// Rate limiter untuk register route
func RegisterRateLimiter() fiber.Handler {
	return newIPLimiter(3, 5*time.Minute, "Too many registration attempts. Please wait a few minutes.", nil)
}
