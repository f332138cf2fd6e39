package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocRequestID    = "reqid"
)

// RequestID reuses an incoming X-Request-ID or generates one, echoes it back
// and stores it in Locals("reqid").
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocRequestID, id)
		return c.Next()
	}
}

func RequestIDFrom(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRequestID).(string); ok {
		return v
	}
	return ""
}

// LoggerMiddleware untuk mencatat semua request. The status is read after
// the error handler has written the response.
func LoggerMiddleware(l zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := l.Info()
		if status >= 500 {
			ev = l.Error()
		} else if status >= 400 {
			ev = l.Warn()
		}
		ev.Str("request_id", RequestIDFrom(c)).
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", status).
			Str("ip", c.IP()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}
