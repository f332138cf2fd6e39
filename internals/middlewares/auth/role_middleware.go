package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	helper "asafs_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError validasi role + custom error message.
// Must run after AuthMiddleware.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return helper.NewAppError("Unauthorized: missing role information", http.StatusUnauthorized)
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "You do not have permission to perform this action"
		}
		return helper.NewAppError(customForbiddenMessage, http.StatusForbidden)
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
