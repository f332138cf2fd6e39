package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "asafs_backend/internals/features/communication/contacts/controller"
	contactRoute "asafs_backend/internals/features/communication/contacts/route"
	contactService "asafs_backend/internals/features/communication/contacts/service"
	newsletterController "asafs_backend/internals/features/communication/newsletters/controller"
	newsletterRoute "asafs_backend/internals/features/communication/newsletters/route"
	newsletterService "asafs_backend/internals/features/communication/newsletters/service"
	"asafs_backend/internals/helpers/mailer"
)

func CommunicationRoutes(api fiber.Router, db *gorm.DB, mail *mailer.Mailer, authMw fiber.Handler) {
	contacts := contactController.NewContactController(contactService.NewContactService(db, mail))
	contactRoute.ContactRoutes(api, contacts, authMw)

	newsletter := newsletterController.NewNewsletterController(newsletterService.NewNewsletterService(db, mail))
	newsletterRoute.NewsletterRoutes(api, newsletter, authMw)
}
