package app

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-appctx/framework/appctx"
	"github.com/km-arc/go-appctx/framework/config"
	"github.com/km-arc/go-appctx/framework/providers"
	"github.com/km-arc/go-appctx/routing"
)

// Application is the top-level application kernel. It embeds the
// application context so user code registers beans directly on it:
//
//	application := app.New()
//	application.Bean("mailer", newMailer)
//	if err := application.Boot(); err != nil { ... }
type Application struct {
	*appctx.Context

	booted bool
}

// New creates an application with the framework beans (config, logger,
// router) registered but not yet instantiated. Register your own beans,
// then call Boot or Run.
func New(envFiles ...string) *Application {
	ctx := appctx.New()
	ctx.Use(
		&providers.ConfigProvider{EnvFiles: envFiles},
		&providers.LoggingProvider{},
		&providers.RoutingProvider{},
	)
	return &Application{Context: ctx}
}

// Boot refreshes the context, instantiating every registered bean in
// dependency order. Safe to call once; Run calls it if needed.
func (a *Application) Boot() error {
	if err := a.Refresh(); err != nil {
		return err
	}
	a.booted = true
	return nil
}

// Booted reports whether Boot has completed successfully.
func (a *Application) Booted() bool { return a.booted }

// Config resolves the configuration bean. Only valid after Boot.
func (a *Application) Config() *config.Config {
	return appctx.MustBeanOf[*config.Config](a.Context)
}

// Logger resolves the logger bean. Only valid after Boot.
func (a *Application) Logger() *zap.Logger {
	return appctx.MustBeanOf[*zap.Logger](a.Context)
}

// Router resolves the router bean. Only valid after Boot.
func (a *Application) Router() *routing.Router {
	return appctx.MustBeanOf[*routing.Router](a.Context)
}

// Run boots the application (if needed) and serves HTTP on APP_PORT.
func (a *Application) Run() error {
	if !a.booted {
		if err := a.Boot(); err != nil {
			return err
		}
	}
	cfg := a.Config()
	log := a.Logger()

	addr := ":" + cfg.App.Port
	log.Info("server listening",
		zap.String("app", cfg.App.Name),
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env))
	return http.ListenAndServe(addr, a.Router())
}

// Environment returns the APP_ENV value. Only valid after Boot.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
