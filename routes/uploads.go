package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// registerUploadRoutes serves locally stored uploads. Nothing is mounted
// when files go to object storage.
func registerUploadRoutes(app *fiber.App, deps Dependencies) {
	if deps.UploadDir == "" {
		return
	}
	app.Static(deps.UploadRoute, deps.UploadDir, fiber.Static{
		Browse:        false,
		CacheDuration: 10 * time.Second,
		MaxAge:        86400,
	})
}
