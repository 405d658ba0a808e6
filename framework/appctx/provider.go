package appctx

// ── Service providers ────────────────────────────────────────────────────────

// Provider groups related bean registrations so an application can be
// assembled from reusable pieces.
//
//	type StorageProvider struct{ DSN string }
//
//	func (p *StorageProvider) Register(ctx *appctx.Context) {
//	    ctx.Bean("db", func(log *zap.Logger) (*sql.DB, error) {
//	        return sql.Open("postgres", p.DSN)
//	    })
//	}
//
// Register must only register definitions; resolving other beans is not
// possible until Refresh has run. Providers needing resolved beans
// implement Booter as well.
type Provider interface {
	Register(ctx *Context)
}

// Booter is an optional second phase for providers. Boot runs after a
// successful Refresh, in provider registration order, when every bean is
// committed and resolvable.
type Booter interface {
	Boot(ctx *Context) error
}
