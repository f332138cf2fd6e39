package controller

import (
	"github.com/gofiber/fiber/v2"

	"asafs_backend/internals/features/communication/contacts/dto"
	"asafs_backend/internals/features/communication/contacts/service"
	helper "asafs_backend/internals/helpers"
)

type ContactController struct {
	Service *service.ContactService
}

func NewContactController(svc *service.ContactService) *ContactController {
	return &ContactController{Service: svc}
}

// POST /api/contact
func (ctrl *ContactController) Submit(c *fiber.Ctx) error {
	var req dto.CreateContactMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if !req.Complete() {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Name, email, and message are required")
	}

	msg, err := ctrl.Service.Save(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonStatus(c, fiber.StatusCreated, fiber.Map{"data": msg})
}

// GET /api/contact
func (ctrl *ContactController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.AdminOpts)
	msgs, total, err := ctrl.Service.List(c.UserContext(), p)
	if err != nil {
		return err
	}
	body := fiber.Map{"data": msgs}
	if p.Requested {
		body["pagination"] = helper.BuildMeta(total, p)
	}
	return helper.JsonStatus(c, fiber.StatusOK, body)
}

// PATCH /api/contact/:id/read
func (ctrl *ContactController) MarkRead(c *fiber.Ctx) error {
	if err := ctrl.Service.MarkRead(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.JsonStatus(c, fiber.StatusOK, nil)
}

// DELETE /api/contact/:id
func (ctrl *ContactController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
