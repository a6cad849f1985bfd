package handlers

import (
	"shopconsole.io/models"
	"shopconsole.io/pkg/formdata"
	"shopconsole.io/pkg/preview"
	"shopconsole.io/pkg/tenant"
	"shopconsole.io/services"

	"github.com/gofiber/fiber/v2"
)

func aboutUsInput(p *formdata.Payload) (in services.AboutUsInput, err error) {
	in.AboutTitle = text(p, "aboutTitle", "About_Title")
	in.AboutDescription = text(p, "aboutDescription", "About_Description")
	in.AboutImage = text(p, "aboutImage", "About_Image")
	in.Mission = text(p, "mission", "Mission")
	in.Vision = text(p, "vision", "Vision")
	in.WorkingTitle = text(p, "workingTitle", "Working_Title")
	if in.Statistics, err = list[models.Statistic](p, "statistics", "Statistics"); err != nil {
		return in, err
	}
	if in.Features, err = list[models.Feature](p, "features", "Features"); err != nil {
		return in, err
	}
	if in.WorkingItems, err = list[models.WorkingItem](p, "workingItems", "Working_Items"); err != nil {
		return in, err
	}
	return in, nil
}

func (h *SettingsHandler) GetAboutUs(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	rec, err := h.aboutUs.Get(c.UserContext(), orgMail)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"aboutUsSetting": rec})
}

// UpsertAboutUs accepts aboutImage and workingItemImage_<n> files.
func (h *SettingsHandler) UpsertAboutUs(c *fiber.Ctx) error {
	orgMail, p, err := request(c)
	if err != nil {
		return err
	}
	in, err := aboutUsInput(p)
	if err != nil {
		return err
	}

	var saved *models.AboutUsSetting
	err = h.withUploads(c, orgMail, func(up *uploads) error {
		image, err := up.single(p, "aboutImage")
		if err != nil {
			return err
		}
		if image != nil {
			in.AboutImage = image
		}
		if in.WorkingItemImages, err = up.indexed(p, "workingItemImage"); err != nil {
			return err
		}
		saved, err = h.aboutUs.Upsert(c.UserContext(), orgMail, in)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updatedAboutUsSetting": saved})
}

func (h *SettingsHandler) RemoveAboutUsItem(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	saved, err := h.aboutUs.RemoveItem(c.UserContext(), orgMail, c.Params("list"), c.Params("itemID"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updatedAboutUsSetting": saved})
}

func (h *SettingsHandler) PreviewAboutUs(c *fiber.Ctx) error {
	orgMail, p, err := request(c)
	if err != nil {
		return err
	}
	in, err := aboutUsInput(p)
	if err != nil {
		return err
	}
	if image := pendingSingle(p, "aboutImage"); image != nil {
		in.AboutImage = image
	}
	if in.WorkingItemImages, err = pendingIndexed(p, "workingItemImage"); err != nil {
		return err
	}
	base, err := h.aboutUs.Get(c.UserContext(), orgMail)
	if err != nil {
		return err
	}
	rec, err := services.BuildAboutUs(base, in)
	if err != nil {
		return err
	}
	return renderPreview(c, "about-us", "About us", preview.AboutUs(rec))
}
