package middlewares

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"asafs_backend/internals/configs"
	helper "asafs_backend/internals/helpers"
)

const genericServerMessage = "Something went very wrong!"

// classify maps err onto the AppError shape used for responses.
func classify(err error) *helper.AppError {
	var appErr *helper.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.WrapAppError(err, fe.Message, fe.Code)
	}
	if mapped, ok := helper.MapDBError(err, "Resource not found", "Duplicate value").(*helper.AppError); ok {
		return mapped
	}
	return &helper.AppError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
}

// ErrorHandler is the Fiber global error handler. Development responses
// include the stack; elsewhere only operational errors keep their message.
func ErrorHandler(env string, log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := classify(err)
		code := appErr.StatusCode
		if code == 0 {
			code = http.StatusInternalServerError
		}

		if env == configs.EnvDevelopment {
			if code >= 500 {
				log.Error().Err(err).Str("path", c.OriginalURL()).Msg("request failed")
			}
			return c.Status(code).JSON(fiber.Map{
				"status": helper.StatusLabel(code),
				"error": fiber.Map{
					"statusCode":    code,
					"status":        helper.StatusLabel(code),
					"isOperational": appErr.IsOperational,
				},
				"message": appErr.Message,
				"stack":   helper.StackOf(err),
			})
		}

		if appErr.IsOperational {
			return c.Status(code).JSON(fiber.Map{
				"status":  helper.StatusLabel(code),
				"message": appErr.Message,
			})
		}

		log.Error().Err(err).Str("path", c.OriginalURL()).Msg("ERROR 💥")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": genericServerMessage,
		})
	}
}

// NotFoundHandler is mounted last and reports unknown routes.
func NotFoundHandler(c *fiber.Ctx) error {
	return helper.NewAppError("Can't find "+c.OriginalURL()+" on this server!", http.StatusNotFound)
}
