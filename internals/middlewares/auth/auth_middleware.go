// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	userModel "asafs_backend/internals/features/users/user/model"
	helper "asafs_backend/internals/helpers"
)

const (
	msgNotLoggedIn  = "You are not logged in! Please log in to get access."
	msgInvalidToken = "Invalid token. Please log in again!"
	msgUserGone     = "The user belonging to this token does no longer exist."
)

type TokenParser interface {
	Parse(raw string) (uuid.UUID, error)
}

type UserFinder interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error)
}

// AuthMiddleware requires "Authorization: Bearer <jwt>" and loads the user
// into Locals("user"), Locals("user_id") and Locals("userRole").
func AuthMiddleware(tokens TokenParser, users UserFinder, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetBearerToken(c)
		if raw == "" {
			return helper.NewAppError(msgNotLoggedIn, http.StatusUnauthorized)
		}

		userID, err := tokens.Parse(raw)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
			return helper.NewAppError(msgInvalidToken, http.StatusUnauthorized)
		}

		user, err := users.FindUserByID(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewAppError(msgUserGone, http.StatusUnauthorized)
			}
			return pkgerrors.Wrap(err, "load token user")
		}

		c.Locals("user", user)
		c.Locals("user_id", user.ID.String())
		c.Locals("userRole", user.Role)
		return c.Next()
	}
}
