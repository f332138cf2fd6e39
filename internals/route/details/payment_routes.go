package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	paymentController "asafs_backend/internals/features/payment/donations/controller"
	paymentRoute "asafs_backend/internals/features/payment/donations/routes"
	paymentService "asafs_backend/internals/features/payment/donations/service"
)

// Payment routes are public; webhooks carry no auth.
func PaymentRoutes(api fiber.Router, gw paymentService.Gateway, log zerolog.Logger) {
	paymentRoute.PaymentRoutes(api, paymentController.NewPaymentController(gw, log))
}
