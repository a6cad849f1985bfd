package handlers

import (
	"shopconsole.io/pkg/tenant"
	"shopconsole.io/services"

	"github.com/gofiber/fiber/v2"
)

type OnboardingHandler struct {
	service services.IOnboardingService
}

func NewOnboardingHandler(service services.IOnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

// Progress reports the wizard steps, which are done and where to resume.
func (h *OnboardingHandler) Progress(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	progress, err := h.service.Progress(c.UserContext(), orgMail)
	if err != nil {
		return err
	}
	return c.JSON(progress)
}
