package middlewares

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// RecoveryMiddleware menangkap panic; the error handler turns it into a 500.
func RecoveryMiddleware(log zerolog.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error().
				Str("panic", fmt.Sprint(e)).
				Str("method", c.Method()).
				Str("path", c.OriginalURL()).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
		},
	})
}
