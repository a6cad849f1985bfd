package routes

import (
	"github.com/gofiber/fiber/v2"
)

// registerSettingsRoutes mounts the four settings categories. POST and PUT
// are both upserts.
func registerSettingsRoutes(api fiber.Router, requireAuth fiber.Handler, deps Dependencies) {
	h := deps.Settings
	settings := api.Group("/settings", requireAuth)

	settings.Get("/header-footer", h.GetHeaderFooter)
	settings.Post("/header-footer", h.UpsertHeaderFooter)
	settings.Put("/header-footer", h.UpsertHeaderFooter)
	settings.Delete("/header-footer/items/:list/:itemID", h.RemoveHeaderFooterItem)
	settings.Post("/header-footer/preview", h.PreviewHeaderFooter)

	settings.Get("/about-us", h.GetAboutUs)
	settings.Post("/about-us", h.UpsertAboutUs)
	settings.Put("/about-us", h.UpsertAboutUs)
	settings.Delete("/about-us/items/:list/:itemID", h.RemoveAboutUsItem)
	settings.Post("/about-us/preview", h.PreviewAboutUs)

	settings.Get("/home-page", h.GetHomePage)
	settings.Post("/home-page", h.UpsertHomePage)
	settings.Put("/home-page", h.UpsertHomePage)
	settings.Post("/home-page/preview", h.PreviewHomePage)

	settings.Get("/policy-details", h.GetPolicy)
	settings.Post("/policy-details", h.UpsertPolicy)
	settings.Put("/policy-details", h.UpsertPolicy)
	settings.Post("/policy-details/preview", h.PreviewPolicy)
}
