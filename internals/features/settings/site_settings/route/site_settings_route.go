package route

import (
	"github.com/gofiber/fiber/v2"

	"asafs_backend/internals/constants"
	"asafs_backend/internals/features/settings/site_settings/controller"
	authMiddleware "asafs_backend/internals/middlewares/auth"
)

func SiteSettingsRoutes(api fiber.Router, ctrl *controller.SiteSettingsController, authMw fiber.Handler) {
	settings := api.Group("/settings")

	settings.Get("/", ctrl.Get)
	settings.Put("/", authMw, authMiddleware.OnlyRoles("", constants.StaffRoles...), ctrl.Update)
}
