package handlers

import (
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/queryparams"
	"shopconsole.io/pkg/tenant"
	"shopconsole.io/services"

	"github.com/gofiber/fiber/v2"
)

type AdminLogHandler struct {
	service services.IAdminLogService
}

func NewAdminLogHandler(service services.IAdminLogService) *AdminLogHandler {
	return &AdminLogHandler{service: service}
}

// List returns the tenant's audit trail, newest first unless asked otherwise.
func (h *AdminLogHandler) List(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		return apperrors.Validation("invalid list query")
	}
	result, err := h.service.List(c.UserContext(), orgMail, params)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
