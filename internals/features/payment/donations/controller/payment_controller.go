package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"asafs_backend/internals/features/payment/donations/dto"
	"asafs_backend/internals/features/payment/donations/service"
	helper "asafs_backend/internals/helpers"
)

const (
	msgAmountMethodRequired = "Amount and method are required"
	msgAmountPositive       = "Amount must be a positive number"
	msgPhoneRequired        = "Phone is required for mobile money payments"
	msgUnsupportedMethod    = "Unsupported payment method"
	msgInvalidBody          = "Invalid request body"
)

type PaymentController struct {
	Gateway service.Gateway
	Log     zerolog.Logger
}

func NewPaymentController(gw service.Gateway, log zerolog.Logger) *PaymentController {
	return &PaymentController{Gateway: gw, Log: log.With().Str("component", "payments").Logger()}
}

// POST /api/payments/initiate
func (ctrl *PaymentController) Initiate(c *fiber.Ctx) error {
	var req dto.InitiatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	req.Normalize()

	if req.Amount == 0 || req.Method == "" {
		return helper.JsonMessage(c, fiber.StatusBadRequest, msgAmountMethodRequired)
	}
	if req.Amount < 0 {
		return helper.JsonMessage(c, fiber.StatusBadRequest, msgAmountPositive)
	}

	route := service.ResolveRoute(req.Method)
	if route.Flow == service.FlowUnsupported || !ctrl.Gateway.Supports(route.Provider) {
		return helper.JsonMessage(c, fiber.StatusBadRequest, msgUnsupportedMethod)
	}

	switch route.Flow {
	case service.FlowHosted:
		sess, err := ctrl.Gateway.CreateHostedSession(c.UserContext(), service.HostedSessionRequest{
			Provider:      route.Provider,
			Amount:        req.Amount,
			Currency:      req.Currency,
			CustomerEmail: req.CustomerEmail(),
			CustomerName:  req.CustomerName(),
		})
		if err != nil {
			return err
		}
		ctrl.Log.Info().Str("provider", route.Provider).Str("session_id", sess.ID).Float64("amount", req.Amount).Str("currency", req.Currency).Msg("hosted payment session created")
		return c.Status(fiber.StatusOK).JSON(dto.HostedPaymentResponse{Status: "success", URL: sess.URL})

	default:
		if req.Phone == "" {
			return helper.JsonMessage(c, fiber.StatusBadRequest, msgPhoneRequired)
		}
		data, err := ctrl.Gateway.ChargeDirect(c.UserContext(), service.DirectChargeRequest{
			Method:   req.Method,
			Amount:   req.Amount,
			Currency: req.Currency,
			Phone:    req.Phone,
			Customer: req.PersonalInfo,
		})
		if err != nil {
			return err
		}
		ctrl.Log.Info().Str("method", req.Method).Float64("amount", req.Amount).Str("currency", req.Currency).Msg("direct charge submitted")
		return helper.JsonStatus(c, fiber.StatusOK, fiber.Map{"data": data})
	}
}
