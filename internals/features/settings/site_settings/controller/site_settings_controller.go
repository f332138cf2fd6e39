package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"asafs_backend/internals/features/settings/site_settings/dto"
	"asafs_backend/internals/features/settings/site_settings/service"
	helper "asafs_backend/internals/helpers"
)

type SiteSettingsController struct {
	Service  *service.SettingsService
	Validate *validator.Validate
}

func NewSiteSettingsController(svc *service.SettingsService) *SiteSettingsController {
	return &SiteSettingsController{Service: svc, Validate: helper.NewValidator()}
}

// GET /api/settings
func (ctrl *SiteSettingsController) Get(c *fiber.Ctx) error {
	settings, err := ctrl.Service.GetSettings(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Paramètres récupérés", settings)
}

// PUT /api/settings
func (ctrl *SiteSettingsController) Update(c *fiber.Ctx) error {
	var req dto.UpdateSiteSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	settings, err := ctrl.Service.UpdateSettings(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Paramètres mis à jour avec succès", settings)
}
