package appctx

import (
	"reflect"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// ── Context ──────────────────────────────────────────────────────────────────

// Context is an application context: a registry of bean definitions plus the
// instances built from them. Register definitions with Bean/Instance/Add,
// then call Refresh to instantiate everything in dependency order.
//
// A Context is a single-writer resource — concurrent registration or Refresh
// calls against the same instance are not supported.
type Context struct {
	log *zap.Logger

	defs []*definition // pending, in registration order

	order  []beanEntry          // committed instances, in commit order
	byName map[string]int       // name → index into order
	byType map[reflect.Type][]int // runtime type → indices into order

	boot []Booter // providers awaiting Boot after a successful refresh
}

// beanEntry pairs a committed instance with the name it was registered
// under. Commit order is externally observable through GetBeans.
type beanEntry struct {
	name  string
	value any
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithLogger attaches a logger; the context reports bean instantiation at
// Debug level. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Context) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates an empty application context.
func New(opts ...Option) *Context {
	c := &Context{
		log:    zap.NewNop(),
		byName: make(map[string]int),
		byType: make(map[reflect.Type][]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Registration ─────────────────────────────────────────────────────────────

// Bean registers a factory as a bean definition under the given name. The
// factory's parameters are dependencies: typed positionals by default,
// name-directed trailing parameters via options. Nothing is validated or
// instantiated until Refresh.
func (c *Context) Bean(name string, factory any, opts ...BeanOption) *Context {
	c.defs = append(c.defs, &definition{name: name, factory: factory, opts: opts})
	return c
}

// Instance registers a pre-built value under the given name. It is wrapped
// in a zero-dependency definition, so it commits during Refresh like any
// other bean and is available to dependents from the first pass.
func (c *Context) Instance(name string, value any) *Context {
	return c.Bean(name, func() any { return value })
}

// Add registers a factory function under its own (package-stripped) runtime
// name. Non-function targets are ignored, so callers may pass mixed
// registration sets without filtering first.
func (c *Context) Add(target any) *Context {
	fv := reflect.ValueOf(target)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return c
	}
	return c.Bean(funcName(fv), target)
}

// Use applies service providers: each provider's Register runs immediately,
// and providers implementing Booter are booted after the next successful
// Refresh, in registration order.
func (c *Context) Use(providers ...Provider) *Context {
	for _, p := range providers {
		p.Register(c)
		if b, ok := p.(Booter); ok {
			c.boot = append(c.boot, b)
		}
	}
	return c
}

// ── Refresh ──────────────────────────────────────────────────────────────────

// Refresh instantiates every pending definition, repeatedly scanning the
// pending list and building whichever definitions have all dependencies
// available, until a full pass makes no progress.
//
// Errors are fail-fast: an ambiguous type, invalid definition, factory
// error, post-construct failure or duplicate name aborts the call, leaving
// already-committed beans registered and queryable. Definitions still
// pending after a zero-progress pass are reported together in one
// UnresolvableError.
func (c *Context) Refresh() error {
	for {
		progressed, err := c.pass()
		if err != nil {
			return err
		}
		if !progressed {
			break
		}
	}

	if len(c.defs) > 0 {
		names := make([]string, len(c.defs))
		for i, d := range c.defs {
			names[i] = d.name
		}
		return &UnresolvableError{Beans: names}
	}

	for len(c.boot) > 0 {
		b := c.boot[0]
		c.boot = c.boot[1:]
		if err := b.Boot(c); err != nil {
			return err
		}
	}
	return nil
}

// pass scans the pending definitions from the front and instantiates the
// first one that resolves. Reports whether progress was made.
func (c *Context) pass() (bool, error) {
	for i, def := range c.defs {
		if err := def.extract(); err != nil {
			return false, err
		}
		args, v, err := c.resolve(def)
		if v == verdictInvalid {
			return false, err
		}
		if v != verdictResolved {
			continue
		}

		instance, err := c.construct(def, args)
		if err != nil {
			return false, err
		}
		// Hooks run before commit: a failing bean is never visible.
		if err := c.runHooks(def, instance); err != nil {
			return false, err
		}
		if err := c.commit(def.name, instance); err != nil {
			return false, err
		}

		c.defs = append(c.defs[:i], c.defs[i+1:]...)
		c.log.Debug("bean instantiated",
			zap.String("bean", def.name),
			zap.Int("pending", len(c.defs)))
		return true, nil
	}
	return false, nil
}

// construct invokes the definition's factory with the bound arguments. A
// non-nil trailing error return is propagated verbatim.
func (c *Context) construct(def *definition, args []reflect.Value) (any, error) {
	out := def.desc.fn.Call(args)
	if def.desc.returnsErr && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

// commit records an instance under its definition name and runtime type.
// Re-recording the same instance under the same name is a no-op; a different
// instance under an existing name is a DuplicateNameError.
func (c *Context) commit(name string, value any) error {
	if idx, ok := c.byName[name]; ok {
		if sameInstance(c.order[idx].value, value) {
			return nil
		}
		return &DuplicateNameError{Name: name}
	}

	idx := len(c.order)
	c.order = append(c.order, beanEntry{name: name, value: value})
	c.byName[name] = idx
	if value != nil {
		t := reflect.TypeOf(value)
		c.byType[t] = append(c.byType[t], idx)
	}
	return nil
}

// Pending returns the names of definitions not yet instantiated, in
// registration order.
func (c *Context) Pending() []string {
	names := make([]string, len(c.defs))
	for i, d := range c.defs {
		names[i] = d.name
	}
	return names
}

// ── helpers ──────────────────────────────────────────────────────────────────

// sameInstance reports whether a and b are the same bean, comparing by
// pointer identity for reference kinds so uncomparable values never panic.
func sameInstance(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Len() == vb.Len() && (va.Len() == 0 || va.Pointer() == vb.Pointer())
	}
	return va.Comparable() && va.Equal(vb)
}

// funcName derives a registration name from a function value:
// "github.com/acme/app.NewMailer" → "NewMailer".
func funcName(fv reflect.Value) string {
	full := runtime.FuncForPC(fv.Pointer()).Name()
	if i := strings.LastIndexByte(full, '.'); i >= 0 {
		full = full[i+1:]
	}
	return strings.TrimSuffix(full, "-fm")
}
