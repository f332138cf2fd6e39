package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"asafs_backend/internals/features/users/auth/dto"
	"asafs_backend/internals/features/users/auth/service"
	userModel "asafs_backend/internals/features/users/user/model"
	helper "asafs_backend/internals/helpers"
)

type AuthController struct {
	Service  *service.AuthService
	Validate *validator.Validate
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc, Validate: helper.NewValidator()}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewAppError("Invalid request body", http.StatusBadRequest)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return helper.NewAppError("Please provide email and password", http.StatusBadRequest)
	}

	user, token, err := ac.Service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.AuthResponse{
		Status: "success",
		Token:  token,
		User:   dto.FromUser(user),
	})
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewAppError("Invalid request body", http.StatusBadRequest)
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	user, token, err := ac.Service.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Status: "success",
		Token:  token,
		User:   dto.FromUser(user),
	})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*userModel.UserModel)
	if !ok || user == nil {
		return helper.NewAppError("You are not logged in! Please log in to get access.", http.StatusUnauthorized)
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"user":   dto.FromUser(user),
	})
}
