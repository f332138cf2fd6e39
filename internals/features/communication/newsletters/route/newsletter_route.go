package route

import (
	"github.com/gofiber/fiber/v2"

	"asafs_backend/internals/features/communication/newsletters/controller"
)

func NewsletterRoutes(api fiber.Router, ctrl *controller.NewsletterController, authMw fiber.Handler) {
	newsletter := api.Group("/newsletter")

	newsletter.Post("/subscribe", ctrl.Subscribe)
	newsletter.Post("/unsubscribe", ctrl.Unsubscribe)

	newsletter.Get("/", authMw, ctrl.List)
}
