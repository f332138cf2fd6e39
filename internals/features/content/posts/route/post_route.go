package route

import (
	"github.com/gofiber/fiber/v2"

	"asafs_backend/internals/constants"
	"asafs_backend/internals/features/content/posts/controller"
	authMiddleware "asafs_backend/internals/middlewares/auth"
)

// PostRoutes mounts /api/posts. Reads are public, writes need a staff role.
func PostRoutes(api fiber.Router, ctrl *controller.PostController, authMw fiber.Handler) {
	posts := api.Group("/posts")

	posts.Get("/", ctrl.List)
	posts.Get("/:id", ctrl.Get)

	staff := []fiber.Handler{authMw, authMiddleware.OnlyRoles("", constants.StaffRoles...)}
	posts.Post("/", append(staff, ctrl.Create)...)
	posts.Put("/:id", append(staff, ctrl.Update)...)
	posts.Delete("/:id", append(staff, ctrl.Delete)...)
}
