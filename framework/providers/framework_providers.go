package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-appctx/framework/appctx"
	"github.com/km-arc/go-appctx/framework/config"
	"github.com/km-arc/go-appctx/framework/logging"
	"github.com/km-arc/go-appctx/routing"
)

// ── ConfigProvider ───────────────────────────────────────────────────────────

// ConfigProvider loads the application configuration from .env and registers
// it as the "config" bean.
type ConfigProvider struct {
	EnvFiles []string
}

func (p *ConfigProvider) Register(ctx *appctx.Context) {
	envFiles := p.EnvFiles
	ctx.Bean("config", func() *config.Config {
		return config.Load(envFiles...)
	})
}

// ── LoggingProvider ──────────────────────────────────────────────────────────

// LoggingProvider registers the "logger" bean. The factory takes the typed
// *config.Config dependency, so the logger is always built after — and
// from — the configuration, wherever registration order put them.
type LoggingProvider struct{}

func (p *LoggingProvider) Register(ctx *appctx.Context) {
	ctx.Bean("logger", func(cfg *config.Config) *zap.Logger {
		return logging.New(cfg)
	})
}

// ── RoutingProvider ──────────────────────────────────────────────────────────

// RoutingProvider registers the "router" bean with request logging wired to
// the "logger" bean.
type RoutingProvider struct{}

func (p *RoutingProvider) Register(ctx *appctx.Context) {
	ctx.Bean("router", func(log *zap.Logger) *routing.Router {
		return routing.New(log)
	})
}
