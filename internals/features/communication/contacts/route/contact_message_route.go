package route

import (
	"github.com/gofiber/fiber/v2"

	"asafs_backend/internals/features/communication/contacts/controller"
)

func ContactRoutes(api fiber.Router, ctrl *controller.ContactController, authMw fiber.Handler) {
	contact := api.Group("/contact")

	contact.Post("/", ctrl.Submit)

	contact.Get("/", authMw, ctrl.List)
	contact.Patch("/:id/read", authMw, ctrl.MarkRead)
	contact.Delete("/:id", authMw, ctrl.Delete)
}
