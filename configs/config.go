package configs

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"shopconsole.io/configs/configslog"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DatabaseConfig holds gorm connection parameters.
type DatabaseConfig struct {
	Driver       string `yaml:"driver"`
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Name         string `yaml:"name"`
	SSLMode      string `yaml:"sslmode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// StorageConfig selects and configures the upload backend.
type StorageConfig struct {
	Backend     string `yaml:"backend"`
	Dir         string `yaml:"dir"`
	Route       string `yaml:"route"`
	MaxBytes    int64  `yaml:"max_bytes"`
	S3Bucket    string `yaml:"s3_bucket"`
	S3Region    string `yaml:"s3_region"`
	S3Endpoint  string `yaml:"s3_endpoint"`
	S3PublicURL string `yaml:"s3_public_url"`
	AccessKey   string `yaml:"-"`
	SecretKey   string `yaml:"-"`
}

// AuthConfig holds token settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"-"`
	AccessTokenTTL  time.Duration `yaml:"-"`
	RefreshTokenTTL time.Duration `yaml:"-"`
	RedisURL        string        `yaml:"redis_url"`
	RedisPassword   string        `yaml:"-"`
}

// AppConfig is the full server configuration.
type AppConfig struct {
	Env                string         `yaml:"env"`
	Port               string         `yaml:"port"`
	PublicBaseURL      string         `yaml:"public_base_url"`
	CORSOrigins        string         `yaml:"cors_origins"`
	AutoMigrate        bool           `yaml:"auto_migrate"`
	AssetSweepInterval time.Duration  `yaml:"-"`
	PendingAssetTTL    time.Duration  `yaml:"-"`
	Database           DatabaseConfig `yaml:"database"`
	Storage            StorageConfig  `yaml:"storage"`
	Auth               AuthConfig     `yaml:"auth"`
}

// fileConfig mirrors AppConfig for YAML; durations are written as strings ("15m").
type fileConfig struct {
	AppConfig          `yaml:",inline"`
	AssetSweepInterval string `yaml:"asset_sweep_interval"`
	PendingAssetTTL    string `yaml:"pending_asset_ttl"`
	AccessTokenTTL     string `yaml:"access_token_ttl"`
	RefreshTokenTTL    string `yaml:"refresh_token_ttl"`
}

const defaultJWTSecret = "change-me-in-production"

// Defaults returns the hardcoded fallbacks used when neither the config file
// nor the environment sets a value.
func Defaults() AppConfig {
	return AppConfig{
		Env:                "production",
		Port:               "5000",
		CORSOrigins:        "http://localhost:3000",
		AssetSweepInterval: 10 * time.Minute,
		PendingAssetTTL:    time.Hour,
		Database: DatabaseConfig{
			Driver:       "mysql",
			Host:         "localhost",
			Port:         3306,
			User:         "root",
			Name:         "ecommerce_admin",
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		},
		Storage: StorageConfig{
			Backend:  "local",
			Dir:      "uploads",
			Route:    "/uploads",
			MaxBytes: 5 << 20,
		},
		Auth: AuthConfig{
			JWTSecret:       defaultJWTSecret,
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
}

// Load reads .env (if present), the optional YAML file named by CONFIG_FILE,
// then environment variables, in that order of increasing precedence.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		configslog.Log.Warn(".env file could not be parsed", zap.Error(err))
	}

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	if !strings.HasPrefix(cfg.Storage.Route, "/") {
		cfg.Storage.Route = "/" + cfg.Storage.Route
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == defaultJWTSecret {
		configslog.Log.Warn("JWT_SECRET is not set, using the built-in development secret")
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *AppConfig) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Storage.Backend {
	case "local":
	case "s3":
		if c.Storage.S3Bucket == "" {
			return errors.New("config: S3_BUCKET is required when UPLOAD_BACKEND=s3")
		}
	default:
		return fmt.Errorf("config: unsupported UPLOAD_BACKEND %q", c.Storage.Backend)
	}
	if c.Storage.MaxBytes <= 0 {
		return errors.New("config: UPLOAD_MAX_BYTES must be positive")
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return errors.New("config: token TTLs must be positive")
	}
	if (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == defaultJWTSecret) && !c.IsDevelopment() {
		return errors.New("config: JWT_SECRET must be set unless APP_ENV=development")
	}
	return nil
}

// IsDevelopment reports whether APP_ENV is development.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

func applyFile(cfg *AppConfig, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	fc := fileConfig{AppConfig: *cfg}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	*cfg = fc.AppConfig

	durations := []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"asset_sweep_interval", fc.AssetSweepInterval, &cfg.AssetSweepInterval},
		{"pending_asset_ttl", fc.PendingAssetTTL, &cfg.PendingAssetTTL},
		{"access_token_ttl", fc.AccessTokenTTL, &cfg.Auth.AccessTokenTTL},
		{"refresh_token_ttl", fc.RefreshTokenTTL, &cfg.Auth.RefreshTokenTTL},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("config: invalid %s in %s: %w", d.name, path, err)
		}
		*d.dst = parsed
	}
	return nil
}

func applyEnv(cfg *AppConfig) error {
	setString(&cfg.Env, "APP_ENV")
	setString(&cfg.Port, "PORT")
	setString(&cfg.PublicBaseURL, "PUBLIC_BASE_URL")
	setString(&cfg.CORSOrigins, "CORS_ORIGINS")

	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")

	setString(&cfg.Storage.Backend, "UPLOAD_BACKEND")
	setString(&cfg.Storage.Dir, "UPLOAD_DIR")
	setString(&cfg.Storage.Route, "UPLOAD_ROUTE")
	setString(&cfg.Storage.S3Bucket, "S3_BUCKET")
	setString(&cfg.Storage.S3Region, "S3_REGION")
	setString(&cfg.Storage.S3Endpoint, "S3_ENDPOINT")
	setString(&cfg.Storage.S3PublicURL, "S3_PUBLIC_URL")
	setString(&cfg.Storage.AccessKey, "AWS_ACCESS_KEY_ID")
	setString(&cfg.Storage.SecretKey, "AWS_SECRET_ACCESS_KEY")

	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Auth.RedisURL, "REDIS_URL")
	setString(&cfg.Auth.RedisPassword, "REDIS_PASSWORD")

	ints := []struct {
		key string
		dst *int
	}{
		{"DB_PORT", &cfg.Database.Port},
		{"DB_MAX_OPEN_CONNS", &cfg.Database.MaxOpenConns},
		{"DB_MAX_IDLE_CONNS", &cfg.Database.MaxIdleConns},
	}
	for _, i := range ints {
		if err := setInt(i.dst, i.key); err != nil {
			return err
		}
	}

	if v, ok := lookup("DB_AUTO_MIGRATE"); ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("config: invalid DB_AUTO_MIGRATE: %w", err)
		}
		cfg.AutoMigrate = b
	}

	if v, ok := lookup("UPLOAD_MAX_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: invalid UPLOAD_MAX_BYTES: %w", err)
		}
		cfg.Storage.MaxBytes = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"ACCESS_TOKEN_TTL", &cfg.Auth.AccessTokenTTL},
		{"REFRESH_TOKEN_TTL", &cfg.Auth.RefreshTokenTTL},
		{"ASSET_SWEEP_INTERVAL", &cfg.AssetSweepInterval},
		{"PENDING_ASSET_TTL", &cfg.PendingAssetTTL},
	}
	for _, d := range durations {
		if v, ok := lookup(d.key); ok {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("config: invalid %s: %w", d.key, err)
			}
			*d.dst = parsed
		}
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}
