package details

import (
	"github.com/gofiber/fiber/v2"

	authController "asafs_backend/internals/features/users/auth/controller"
	authRoute "asafs_backend/internals/features/users/auth/route"
	authService "asafs_backend/internals/features/users/auth/service"
)

func AuthRoutes(api fiber.Router, svc *authService.AuthService, authMw fiber.Handler) {
	authRoute.AuthRoutes(api, authController.NewAuthController(svc), authMw)
}
