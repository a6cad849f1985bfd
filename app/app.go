// Package app wires configuration, persistence and handlers into a fiber
// application. main and the HTTP tests both build the server through New.
package app

import (
	"context"
	"fmt"
	"time"

	"shopconsole.io/configs"
	"shopconsole.io/configs/configslog"
	"shopconsole.io/configs/configsredis"
	"shopconsole.io/handlers"
	auth_handlers "shopconsole.io/handlers/auth"
	entity_handlers "shopconsole.io/handlers/entities"
	onboarding_handlers "shopconsole.io/handlers/onboarding"
	settings_handlers "shopconsole.io/handlers/settings"
	"shopconsole.io/models"
	"shopconsole.io/pkg/metrics"
	"shopconsole.io/pkg/storage"
	"shopconsole.io/pkg/tokens"
	"shopconsole.io/routes"
	"shopconsole.io/services"
	"shopconsole.io/views"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxFilesPerRequest bounds the body size together with UPLOAD_MAX_BYTES.
const maxFilesPerRequest = 12

type App struct {
	Fiber  *fiber.App
	Assets *services.AssetService
	Issuer *tokens.Issuer

	cfg   *configs.AppConfig
	redis *redis.Client
}

// New builds the server. backend may be nil, in which case the one named
// by cfg.Storage is created.
func New(ctx context.Context, cfg *configs.AppConfig, db *gorm.DB, backend storage.Backend) (*App, error) {
	if backend == nil {
		var err error
		if backend, err = storage.New(ctx, cfg.Storage, cfg.PublicBaseURL); err != nil {
			return nil, fmt.Errorf("app: upload storage: %w", err)
		}
	}

	redisClient, err := configsredis.NewClient(ctx, cfg.Auth.RedisURL, cfg.Auth.RedisPassword)
	if err != nil {
		return nil, fmt.Errorf("app: redis: %w", err)
	}
	var refresh tokens.RefreshStore
	if redisClient != nil {
		refresh = tokens.NewRedisStore(redisClient)
	} else {
		configslog.Log.Warn("REDIS_URL is not set, refresh tokens are kept in memory")
		refresh = tokens.NewMemoryStore()
	}

	m := metrics.New()
	issuer := tokens.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)
	assets := services.NewAssetService(db, backend, cfg.Storage.MaxBytes, m)

	settingsHandler := settings_handlers.NewSettingsHandler(
		services.NewHeaderFooterService(db, assets),
		services.NewAboutUsService(db, assets),
		services.NewHomePageService(db, assets),
		services.NewPolicyService(db, assets),
		assets,
	)

	deps := routes.Dependencies{
		DB:          db,
		Issuer:      issuer,
		Metrics:     m,
		CORSOrigins: cfg.CORSOrigins,
		UploadRoute: cfg.Storage.Route,
		Auth:        auth_handlers.NewAuthHandler(services.NewAuthService(db, issuer, refresh, cfg.Auth.RefreshTokenTTL)),
		Settings:    settingsHandler,
		Onboarding:  onboarding_handlers.NewOnboardingHandler(services.NewOnboardingService(db)),
		AdminLogs:   entity_handlers.NewAdminLogHandler(services.NewAdminLogService(db)),
		Entities:    entityRoutes(db),
	}
	if cfg.Storage.Backend != "s3" {
		deps.UploadDir = cfg.Storage.Dir
	}

	server := fiber.New(fiber.Config{
		AppName:      "shopconsole",
		ErrorHandler: handlers.ErrorHandler,
		Views:        views.NewEngine(),
		BodyLimit:    int(cfg.Storage.MaxBytes)*maxFilesPerRequest + 1<<20,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	routes.SetupRoutes(server, deps)

	return &App{Fiber: server, Assets: assets, Issuer: issuer, cfg: cfg, redis: redisClient}, nil
}

func entityRoutes(db *gorm.DB) []routes.EntityRoutes {
	customers := services.NewEntityService[models.Customer](db, "customer",
		[]string{"name", "email"}, []string{"name", "email", "phone"})
	products := services.NewEntityService[models.Product](db, "product",
		[]string{"name", "price", "stock", "category"}, []string{"name", "sku", "category"})
	orders := services.NewEntityService[models.Order](db, "order",
		[]string{"status", "total"}, []string{"status"})
	events := services.NewEntityService[models.Event](db, "event",
		[]string{"title", "starts_at", "ends_at"}, []string{"title"})
	reviews := services.NewEntityService[models.Review](db, "review",
		[]string{"rating"}, []string{"customer_name", "comment"})
	notifications := services.NewEntityService[models.Notification](db, "notification",
		[]string{"is_read"}, []string{"title", "message"})

	return []routes.EntityRoutes{
		{Path: "customers", Register: entity_handlers.NewEntityHandler[models.Customer]("customer", customers).Register},
		{Path: "products", Register: entity_handlers.NewEntityHandler[models.Product]("product", products).Register},
		{Path: "orders", Register: entity_handlers.NewEntityHandler[models.Order]("order", orders).Register},
		{Path: "events", Register: entity_handlers.NewEntityHandler[models.Event]("event", events).Register},
		{Path: "reviews", Register: entity_handlers.NewEntityHandler[models.Review]("review", reviews).Register},
		{Path: "notifications", Register: entity_handlers.NewEntityHandler[models.Notification]("notification", notifications).Register},
	}
}

// RunSweeper deletes orphaned and stale pending uploads every interval
// until ctx is cancelled.
func (a *App) RunSweeper(ctx context.Context) {
	if a.cfg.AssetSweepInterval <= 0 {
		return
	}
	ticker := time.NewTicker(a.cfg.AssetSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := a.Assets.Sweep(ctx, a.cfg.PendingAssetTTL)
			if err != nil {
				configslog.Log.Warn("Asset sweep failed", zap.Error(err))
				continue
			}
			if removed > 0 {
				configslog.Log.Info("Asset sweep removed uploads", zap.Int("count", removed))
			}
		}
	}
}

// Shutdown stops the HTTP server and releases the Redis connection.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Fiber.ShutdownWithContext(ctx)
	if a.redis != nil {
		if closeErr := a.redis.Close(); closeErr != nil {
			configslog.Log.Warn("Redis client could not be closed", zap.Error(closeErr))
		}
	}
	return err
}
