// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "asafs_backend/internals/features/users/auth/controller"
	rateLimiter "asafs_backend/internals/middlewares"
)

// AuthRoutes mounts /api/auth. authMw guards the routes that need a user.
func AuthRoutes(api fiber.Router, ctrl *controller.AuthController, authMw fiber.Handler) {
	baseAuth := api.Group("/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), ctrl.Register)

	baseAuth.Get("/me", authMw, ctrl.Me)
}
