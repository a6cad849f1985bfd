package handlers

import (
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/tenant"
	"shopconsole.io/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service services.IAuthService
}

func NewAuthHandler(service services.IAuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" form:"refreshToken"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in services.SignupInput
	if err := c.BodyParser(&in); err != nil {
		return apperrors.Validation("invalid signup payload")
	}
	res, err := h.service.Signup(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in services.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return apperrors.Validation("invalid login payload")
	}
	res, err := h.service.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid refresh payload")
	}
	res, err := h.service.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid logout payload")
	}
	if err := h.service.Logout(c.UserContext(), req.RefreshToken); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	adminID, err := tenant.AdminIDFromFiber(c)
	if err != nil {
		return err
	}
	admin, err := h.service.Me(c.UserContext(), adminID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"admin": admin})
}
