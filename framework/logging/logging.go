// Package logging builds the application's structured zap logger from
// configuration.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/go-appctx/framework/config"
)

// New creates a zap logger for the given configuration. Production
// environments get JSON output at Info level, everything else a colored
// development console at Debug level; LOG_LEVEL overrides either.
func New(cfg *config.Config) *zap.Logger {
	var zc zap.Config
	if cfg.App.Env == "production" {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	switch cfg.Log.Level {
	case "debug":
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zc.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		if cfg.App.Env == "production" {
			zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		} else {
			zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
	}

	logger, err := zc.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		panic("logging: failed to build logger: " + err.Error())
	}
	return logger
}
