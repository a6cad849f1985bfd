package routes

import (
	"github.com/gofiber/fiber/v2"
)

func registerEntityRoutes(api fiber.Router, requireAuth fiber.Handler, deps Dependencies) {
	api.Get("/onboarding", requireAuth, deps.Onboarding.Progress)
	api.Get("/admin-logs", requireAuth, deps.AdminLogs.List)
	for _, e := range deps.Entities {
		e.Register(api.Group("/"+e.Path, requireAuth))
	}
}
