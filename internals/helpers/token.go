package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetBearerToken returns the token from "Authorization: Bearer <token>",
// or "" when the header is missing or malformed.
func GetBearerToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
