package appctx

// The package-level functions forward to one shared default context, for
// programs that only ever need a single container. The default context is a
// plain Context value — the resolver itself carries no ambient state — and
// inherits the single-writer contract.

var defaultContext = New()

// Default returns the shared default context used by the package-level
// convenience functions.
func Default() *Context { return defaultContext }

// Bean registers a factory on the default context.
func Bean(name string, factory any, opts ...BeanOption) *Context {
	return defaultContext.Bean(name, factory, opts...)
}

// Instance registers a pre-built value on the default context.
func Instance(name string, value any) *Context {
	return defaultContext.Instance(name, value)
}

// Add registers a factory function on the default context under its own
// runtime name.
func Add(target any) *Context {
	return defaultContext.Add(target)
}

// Use applies providers to the default context.
func Use(providers ...Provider) *Context {
	return defaultContext.Use(providers...)
}

// Refresh instantiates all pending definitions on the default context.
func Refresh() error { return defaultContext.Refresh() }

// GetBean looks up a bean by name on the default context.
func GetBean(name string) (any, error) { return defaultContext.GetBean(name) }
