package handlers

import (
	"shopconsole.io/models"
	"shopconsole.io/pkg/formdata"
	"shopconsole.io/pkg/preview"
	"shopconsole.io/pkg/tenant"
	"shopconsole.io/services"

	"github.com/gofiber/fiber/v2"
)

func homePageInput(p *formdata.Payload) (in services.HomePageInput, err error) {
	in.HeroTitle = text(p, "heroTitle", "Hero_Title")
	in.HeroSubtitle = text(p, "heroSubtitle", "Hero_Subtitle")
	in.HeroButtonText = text(p, "heroButtonText", "Hero_Button_Text")
	in.HeroButtonLink = text(p, "heroButtonLink", "Hero_Button_Link")
	in.FeaturedTitle = text(p, "featuredTitle", "Featured_Title")
	in.FeaturedSubtitle = text(p, "featuredSubtitle", "Featured_Subtitle")
	in.KeepHeroImages, err = list[string](p, "existingHeroImages", "Hero_Images")
	return in, err
}

func (h *SettingsHandler) GetHomePage(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	rec, err := h.homePage.Get(c.UserContext(), orgMail)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"homePageSetting": rec})
}

// UpsertHomePage appends heroImages files after the kept existingHeroImages.
func (h *SettingsHandler) UpsertHomePage(c *fiber.Ctx) error {
	orgMail, p, err := request(c)
	if err != nil {
		return err
	}
	in, err := homePageInput(p)
	if err != nil {
		return err
	}

	var saved *models.HomePageSetting
	err = h.withUploads(c, orgMail, func(up *uploads) error {
		var err error
		if in.NewHeroImages, err = up.multi(p, "heroImages"); err != nil {
			return err
		}
		saved, err = h.homePage.Upsert(c.UserContext(), orgMail, in)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updatedHomePageSetting": saved})
}

// PreviewHomePage counts uploaded heroImages as placeholder slides without
// storing them.
func (h *SettingsHandler) PreviewHomePage(c *fiber.Ctx) error {
	orgMail, p, err := request(c)
	if err != nil {
		return err
	}
	in, err := homePageInput(p)
	if err != nil {
		return err
	}
	in.NewHeroImages = pendingMulti(p, "heroImages")
	base, err := h.homePage.Get(c.UserContext(), orgMail)
	if err != nil {
		return err
	}
	rec, err := services.BuildHomePage(base, in)
	if err != nil {
		return err
	}
	return renderPreview(c, "home-page", "Home page", preview.HomePage(rec))
}
