package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsController "asafs_backend/internals/features/settings/site_settings/controller"
	settingsRoute "asafs_backend/internals/features/settings/site_settings/route"
	settingsService "asafs_backend/internals/features/settings/site_settings/service"
)

func SettingsRoutes(api fiber.Router, db *gorm.DB, authMw fiber.Handler) {
	ctrl := settingsController.NewSiteSettingsController(settingsService.NewSettingsService(db))
	settingsRoute.SiteSettingsRoutes(api, ctrl, authMw)
}
