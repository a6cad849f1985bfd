package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log structured logger; use with zap fields.
	Log *zap.Logger = zap.NewNop()
	// SLog sugared logger for printf-style messages.
	SLog *zap.SugaredLogger = Log.Sugar()
)

// InitLogger builds the process-wide loggers. APP_ENV=development switches
// to a colored console encoder, anything else logs JSON.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(lvl)); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		logger = zap.NewExample()
		logger.Warn("Logger config could not be built, falling back to example logger", zap.Error(err))
	}

	SetLogger(logger)
}

// SetLogger replaces both loggers. Tests use it with zaptest/observer loggers.
func SetLogger(logger *zap.Logger) {
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered entries; call it deferred from main.
func SyncLogger() {
	_ = Log.Sync()
}
