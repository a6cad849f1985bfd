package handlers

import (
	"shopconsole.io/models"
	"shopconsole.io/pkg/formdata"
	"shopconsole.io/pkg/preview"
	"shopconsole.io/pkg/tenant"
	"shopconsole.io/services"

	"github.com/gofiber/fiber/v2"
)

func headerFooterInput(p *formdata.Payload) (in services.HeaderFooterInput, err error) {
	in.NavbarLogo = text(p, "navbarLogo", "Navbar_Logo")
	in.FooterDescription = text(p, "footerDescription", "Footer_Description")
	in.FooterCopyright = text(p, "footerCopyright", "Footer_Copyright")
	if in.NavIcons, err = list[models.NavIcon](p, "navIcons", "Nav_Icons"); err != nil {
		return in, err
	}
	if in.CountryBlocks, err = list[models.CountryBlock](p, "countryBlocks", "Country_Blocks"); err != nil {
		return in, err
	}
	if in.FooterLinks, err = list[models.FooterLink](p, "footerLinks", "Footer_Links"); err != nil {
		return in, err
	}
	if in.SocialIcons, err = list[models.SocialIcon](p, "socialIcons", "Social_Icons"); err != nil {
		return in, err
	}
	return in, nil
}

func (h *SettingsHandler) GetHeaderFooter(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	rec, err := h.headerFooter.Get(c.UserContext(), orgMail)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"headerFooterSetting": rec})
}

// UpsertHeaderFooter accepts navbarLogo and navIconImage_<n> files next to
// the text and JSON list fields.
func (h *SettingsHandler) UpsertHeaderFooter(c *fiber.Ctx) error {
	orgMail, p, err := request(c)
	if err != nil {
		return err
	}
	in, err := headerFooterInput(p)
	if err != nil {
		return err
	}

	var saved *models.HeaderFooterSetting
	err = h.withUploads(c, orgMail, func(up *uploads) error {
		logo, err := up.single(p, "navbarLogo")
		if err != nil {
			return err
		}
		if logo != nil {
			in.NavbarLogo = logo
		}
		if in.NavIconImages, err = up.indexed(p, "navIconImage"); err != nil {
			return err
		}
		saved, err = h.headerFooter.Upsert(c.UserContext(), orgMail, in)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updatedHeaderFooterSetting": saved})
}

func (h *SettingsHandler) RemoveHeaderFooterItem(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	saved, err := h.headerFooter.RemoveItem(c.UserContext(), orgMail, c.Params("list"), c.Params("itemID"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updatedHeaderFooterSetting": saved})
}

func (h *SettingsHandler) PreviewHeaderFooter(c *fiber.Ctx) error {
	orgMail, p, err := request(c)
	if err != nil {
		return err
	}
	in, err := headerFooterInput(p)
	if err != nil {
		return err
	}
	if logo := pendingSingle(p, "navbarLogo"); logo != nil {
		in.NavbarLogo = logo
	}
	if in.NavIconImages, err = pendingIndexed(p, "navIconImage"); err != nil {
		return err
	}
	base, err := h.headerFooter.Get(c.UserContext(), orgMail)
	if err != nil {
		return err
	}
	rec, err := services.BuildHeaderFooter(base, in)
	if err != nil {
		return err
	}
	return renderPreview(c, "header-footer", "Header & footer", preview.HeaderFooter(rec))
}
