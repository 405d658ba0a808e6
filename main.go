package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-appctx/app"
	"github.com/km-arc/go-appctx/framework/appctx"
	gohttp "github.com/km-arc/go-appctx/http"
	"github.com/km-arc/go-appctx/routing"
)

// Greeter is a small demo service assembled by the container: the logger
// dependency is injected by type, the greeting by named default.
type Greeter struct {
	log      *zap.Logger
	greeting string
	warm     bool
}

// NewGreeter is the bean factory. The trailing "greeting" parameter is
// bound via appctx.NamedDefault at registration time.
func NewGreeter(logger *zap.Logger, greeting string) *Greeter {
	return &Greeter{log: logger, greeting: greeting}
}

// Warm is a post-construct hook: it runs after the factory returns, before
// the bean is visible to anyone.
func (g *Greeter) Warm() {
	g.warm = true
	g.log.Debug("greeter warmed up")
}

func (g *Greeter) Greet(name string) string {
	return fmt.Sprintf("%s, %s!", g.greeting, name)
}

func main() {
	application := app.New()

	application.Bean("greeter", NewGreeter,
		appctx.NamedDefault("greeting", "Hello"),
		appctx.PostConstruct("Warm"),
	)

	if err := application.Boot(); err != nil {
		log.Fatalf("boot: %v", err)
	}

	greeter := appctx.MustBeanOf[*Greeter](application.Context)
	r := application.Router()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		gohttp.NewResponse(w).Success(map[string]any{"message": "Welcome to AppCtx!"})
	})

	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/greet/{name}", func(w http.ResponseWriter, req *http.Request) {
			in := gohttp.NewRequest(req)
			greeting := greeter.Greet(in.Param("name"))
			if suffix := in.Query("suffix"); suffix != "" {
				greeting += " " + suffix
			}
			gohttp.NewResponse(w).Success(map[string]any{"greeting": greeting})
		})
	})

	if err := application.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
