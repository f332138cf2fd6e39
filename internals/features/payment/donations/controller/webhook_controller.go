package controller

import (
	"github.com/gofiber/fiber/v2"
)

// Provider notifications are acknowledged and logged only: no signature
// check, no lookup, no state change. They never fail.

// POST /api/payments/callback/maishapay
func (ctrl *PaymentController) MaishaPayCallback(c *fiber.Ctx) error {
	ctrl.Log.Info().Bytes("body", c.Body()).Msg("Maisha Pay Webhook")
	return c.Status(fiber.StatusOK).SendString("OK")
}

// POST /api/payments/webhook/stripe
func (ctrl *PaymentController) StripeWebhook(c *fiber.Ctx) error {
	ctrl.Log.Info().Int("bytes", len(c.Body())).Msg("Stripe Webhook received")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
}

// POST /api/payments/webhook/midtrans
func (ctrl *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	ctrl.Log.Info().Bytes("body", c.Body()).Msg("Midtrans notification received")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
}
