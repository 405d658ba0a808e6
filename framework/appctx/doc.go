// Package appctx provides a Spring-style dependency-injection container
// for Go.
//
// # Overview
//
// An application context is a registry of bean definitions — named factory
// functions whose parameters are dependencies on other beans. Calling
// Refresh() instantiates every definition in an order that satisfies those
// dependencies, without the caller ever spelling the order out.
//
// Dependencies are matched two ways:
//
//   - by declared type — a factory parameter's Go type selects the single
//     bean of that type (more than one candidate is an error)
//   - by name — a parameter declared via Named/NamedDefault binds the bean
//     registered under that exact name
//
// # Registering beans
//
//	ctx := appctx.New()
//
//	// Factory with a typed dependency: the *Database bean is wired in.
//	ctx.Bean("repository", func(db *Database) *Repository {
//	    return &Repository{DB: db}
//	})
//
//	// Pre-built value.
//	ctx.Instance("database", db)
//
//	// Convenience: registered under the function's own name ("newMailer").
//	ctx.Add(newMailer)
//
// # Named parameters, defaults and the catch-all sink
//
// Go function signatures carry parameter types but not usable parameter
// names, so name-directed bindings are declared with options. Options map
// onto the factory's trailing parameters, in the order given:
//
//	// func(repo *Repository, timeout int, extras map[string]any) *Server
//	ctx.Bean("server", newServer,
//	    appctx.NamedDefault("timeout", 30),  // default wins over a "timeout" bean
//	    appctx.CollectRemaining(),           // every otherwise-unused named bean
//	)
//
// # Refresh
//
//	if err := ctx.Refresh(); err != nil {
//	    // circular dependency, missing provider, ambiguous type, ...
//	}
//
// Refresh repeatedly scans the pending definitions and instantiates
// whichever have all their dependencies available, until none are left. A
// full pass with no progress reports every remaining definition in one
// UnresolvableError.
//
// # Post-construct hooks
//
// Lifecycle methods are marked at registration time and invoked, in the
// declared order, after the factory returns and before the bean becomes
// visible to lookups:
//
//	ctx.Bean("client", newClient, appctx.PostConstruct("Connect", "Warm"))
//
// A hook takes no arguments and may return an error; a hook error aborts
// Refresh and leaves the bean unregistered.
//
// # Looking up beans
//
//	svc, err := ctx.GetBean("service")          // by name
//	svc, err := appctx.BeanOf[*Service](ctx)    // by type, first match
//	all := appctx.BeansOf[*Service](ctx)        // every match, in commit order
//
// # Default context
//
// For single-context programs the package exposes a shared default context
// through top-level functions:
//
//	appctx.Bean("service", newService)
//	_ = appctx.Refresh()
//	svc, _ := appctx.GetBean("service")
//
// A context is single-writer: no concurrent registration or Refresh calls
// against the same context are supported.
package appctx
