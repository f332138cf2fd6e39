package controller

import (
	"github.com/gofiber/fiber/v2"

	"asafs_backend/internals/features/communication/newsletters/dto"
	"asafs_backend/internals/features/communication/newsletters/service"
	helper "asafs_backend/internals/helpers"
)

const msgEmailRequired = "Email is required"

type NewsletterController struct {
	Service *service.NewsletterService
}

func NewNewsletterController(svc *service.NewsletterService) *NewsletterController {
	return &NewsletterController{Service: svc}
}

func parseEmail(c *fiber.Ctx) (string, bool) {
	var req dto.NewsletterEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return "", false
	}
	req.Normalize()
	return req.Email, req.Email != ""
}

// POST /api/newsletter/subscribe
func (ctrl *NewsletterController) Subscribe(c *fiber.Ctx) error {
	email, ok := parseEmail(c)
	if !ok {
		return helper.JsonMessage(c, fiber.StatusBadRequest, msgEmailRequired)
	}
	sub, err := ctrl.Service.Subscribe(c.UserContext(), email)
	if err != nil {
		return err
	}
	return helper.JsonStatus(c, fiber.StatusCreated, fiber.Map{"data": sub})
}

// POST /api/newsletter/unsubscribe
func (ctrl *NewsletterController) Unsubscribe(c *fiber.Ctx) error {
	email, ok := parseEmail(c)
	if !ok {
		return helper.JsonMessage(c, fiber.StatusBadRequest, msgEmailRequired)
	}
	if err := ctrl.Service.Unsubscribe(c.UserContext(), email); err != nil {
		return err
	}
	return helper.JsonStatus(c, fiber.StatusOK, fiber.Map{"message": "Unsubscribed successfully"})
}

// GET /api/newsletter
func (ctrl *NewsletterController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.AdminOpts)
	subs, total, err := ctrl.Service.List(c.UserContext(), p)
	if err != nil {
		return err
	}
	body := fiber.Map{"data": subs}
	if p.Requested {
		body["pagination"] = helper.BuildMeta(total, p)
	}
	return helper.JsonStatus(c, fiber.StatusOK, body)
}
