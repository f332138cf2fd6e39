package route

import (
	"github.com/gofiber/fiber/v2"

	paymentController "asafs_backend/internals/features/payment/donations/controller"
)

// PaymentRoutes mounts /api/payments. Every route is public.
func PaymentRoutes(api fiber.Router, ctrl *paymentController.PaymentController) {
	payments := api.Group("/payments")

	payments.Post("/initiate", ctrl.Initiate)

	payments.Post("/callback/maishapay", ctrl.MaishaPayCallback)
	payments.Post("/webhook/stripe", ctrl.StripeWebhook)
	payments.Post("/webhook/midtrans", ctrl.MidtransWebhook)
}
