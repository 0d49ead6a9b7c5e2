package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the service logger.
//
// APP_ENV=development switches to the console encoder; LOG_LEVEL (debug, info,
// warn, error) overrides the default info level.
func New() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if strings.EqualFold(os.Getenv("APP_ENV"), "development") {
		config = zap.NewDevelopmentConfig()
	}
	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		level, err := zapcore.ParseLevel(raw)
		if err != nil {
			return nil, err
		}
		config.Level = zap.NewAtomicLevelAt(level)
	}
	return config.Build(zap.Fields(zap.String("service", "contractor-takeoff")))
}

// Must is New for process entrypoints; it falls back to a production logger.
func Must() *zap.Logger {
	logger, err := New()
	if err != nil {
		logger = zap.Must(zap.NewProduction())
		logger.Warn("invalid logger configuration; using defaults", zap.Error(err))
	}
	return logger
}
