package handlers

import (
	"shopconsole.io/pkg/formdata"
	"shopconsole.io/pkg/preview"
	"shopconsole.io/pkg/tenant"
	"shopconsole.io/services"

	"github.com/gofiber/fiber/v2"
)

func policyInput(p *formdata.Payload) services.PolicyInput {
	return services.PolicyInput{
		PrivacyPolicy:   text(p, "privacyPolicy", "Privacy_Policy"),
		TermsConditions: text(p, "termsConditions", "Terms_Conditions"),
		ReturnPolicy:    text(p, "returnPolicy", "Return_Policy"),
		ShippingPolicy:  text(p, "shippingPolicy", "Shipping_Policy"),
		RefundPolicy:    text(p, "refundPolicy", "Refund_Policy"),
	}
}

func (h *SettingsHandler) GetPolicy(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	rec, err := h.policy.Get(c.UserContext(), orgMail)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"policyDetailsSetting": rec})
}

func (h *SettingsHandler) UpsertPolicy(c *fiber.Ctx) error {
	orgMail, p, err := request(c)
	if err != nil {
		return err
	}
	saved, err := h.policy.Upsert(c.UserContext(), orgMail, policyInput(p))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updatedPolicyDetailsSetting": saved})
}

func (h *SettingsHandler) PreviewPolicy(c *fiber.Ctx) error {
	orgMail, p, err := request(c)
	if err != nil {
		return err
	}
	base, err := h.policy.Get(c.UserContext(), orgMail)
	if err != nil {
		return err
	}
	rec, err := services.BuildPolicy(base, policyInput(p))
	if err != nil {
		return err
	}
	return renderPreview(c, "policy-details", "Policies", preview.Policy(rec))
}
