package routes

import (
	"context"
	"time"

	auth_handlers "shopconsole.io/handlers/auth"
	entity_handlers "shopconsole.io/handlers/entities"
	onboarding_handlers "shopconsole.io/handlers/onboarding"
	settings_handlers "shopconsole.io/handlers/settings"
	"shopconsole.io/middlewares"
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/metrics"
	"shopconsole.io/pkg/tokens"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// EntityRoutes mounts one commerce resource under /api/<Path>.
type EntityRoutes struct {
	Path     string
	Register func(router fiber.Router)
}

// Dependencies is everything SetupRoutes wires into the app.
type Dependencies struct {
	DB          *gorm.DB
	Issuer      *tokens.Issuer
	Metrics     *metrics.Metrics
	CORSOrigins string
	// UploadDir is served under UploadRoute when uploads live on local disk.
	UploadDir   string
	UploadRoute string

	Auth       *auth_handlers.AuthHandler
	Settings   *settings_handlers.SettingsHandler
	Onboarding *onboarding_handlers.OnboardingHandler
	AdminLogs  *entity_handlers.AdminLogHandler
	Entities   []EntityRoutes
}

// SetupRoutes registers global middleware and every route group.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	app.Use(recoverMiddleware.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: deps.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}
	app.Use(middlewares.RequestLogger())

	app.Get("/healthz", healthHandler(deps.DB))
	registerUploadRoutes(app, deps)

	api := app.Group("/api")
	requireAuth := middlewares.AuthMiddleware(deps.Issuer)
	registerAuthRoutes(api, requireAuth, deps)
	registerSettingsRoutes(api, requireAuth, deps)
	registerEntityRoutes(api, requireAuth, deps)

	app.Use(notFoundHandler)
}

func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil {
			return apperrors.Internal("database handle unavailable", err)
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Resource not found",
		"code":  apperrors.CodeNotFound,
	})
}
