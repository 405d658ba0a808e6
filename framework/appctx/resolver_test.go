package appctx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-appctx/framework/appctx"
)

// ── typed positional resolution ──────────────────────────────────────────────

func TestResolve_AmbiguousTypedDependency(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("one", func() *Service { return &Service{Name: "one"} })
	ctx.Bean("two", func() *Service { return &Service{Name: "two"} })
	ctx.Bean("dependent", func(svc *Service) *Repository { return &Repository{Svc: svc} })

	err := ctx.Refresh()
	var amb *appctx.AmbiguousTypeError
	require.ErrorAs(t, err, &amb)
	require.Equal(t, 2, amb.Count)

	// Direct type lookup never treats multiple matches as an error: the
	// first-committed bean wins.
	svc, lookupErr := appctx.BeanOf[*Service](ctx)
	require.NoError(t, lookupErr)
	require.Equal(t, "one", svc.Name)
}

type notifier interface{ Notify() string }

type emailNotifier struct{ addr string }

func (n *emailNotifier) Notify() string { return "mail to " + n.addr }

func TestResolve_InterfaceDependency(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("alerts", func(n notifier) *Service { return &Service{Name: n.Notify()} })
	ctx.Bean("email", func() *emailNotifier { return &emailNotifier{addr: "ops@example.com"} })

	require.NoError(t, ctx.Refresh())
	svc, err := ctx.GetBean("alerts")
	require.NoError(t, err)
	require.Equal(t, "mail to ops@example.com", svc.(*Service).Name)
}

func TestResolve_UntypedPositionalIsInvalid(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("bad", func(dep any) *Service { return &Service{} })
	ctx.Bean("good", func() *Service { return &Service{Name: "good"} })

	err := ctx.Refresh()
	var inv *appctx.InvalidDefinitionError
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "bad", inv.Bean)

	// Fail-fast: nothing after the invalid definition was attempted.
	_, err = ctx.GetBean("good")
	var nf *appctx.NotFoundError
	require.ErrorAs(t, err, &nf)
}

// ── named parameters ─────────────────────────────────────────────────────────

func TestResolve_NamedBinding(t *testing.T) {
	ctx := appctx.New()
	ctx.Instance("databaseUrl", "postgres://localhost/app")
	ctx.Bean("client", func(url string) *Service { return &Service{Name: url} },
		appctx.Named("databaseUrl"))

	require.NoError(t, ctx.Refresh())
	got, err := ctx.GetBean("client")
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/app", got.(*Service).Name)
}

func TestResolve_NamedBindingMissingDefers(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("client", func(url string) *Service { return &Service{Name: url} },
		appctx.Named("databaseUrl"))

	err := ctx.Refresh()
	var unres *appctx.UnresolvableError
	require.ErrorAs(t, err, &unres)
	require.Equal(t, []string{"client"}, unres.Beans)
}

func TestResolve_DefaultBeatsSameNamedBean(t *testing.T) {
	ctx := appctx.New()
	ctx.Instance("timeout", 99)

	var bound int
	ctx.Bean("probe", func(timeout int) *Repository {
		bound = timeout
		return &Repository{}
	}, appctx.NamedDefault("timeout", 30))

	require.NoError(t, ctx.Refresh())
	require.Equal(t, 30, bound)
}

func TestResolve_NamedTypeMismatchIsInvalid(t *testing.T) {
	ctx := appctx.New()
	ctx.Instance("databaseUrl", 12345)
	ctx.Bean("client", func(url string) *Service { return &Service{Name: url} },
		appctx.Named("databaseUrl"))

	err := ctx.Refresh()
	var inv *appctx.InvalidDefinitionError
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "client", inv.Bean)
}

// ── catch-all sink ───────────────────────────────────────────────────────────

type configValue struct{ v string }

func TestResolve_CatchAllReceivesUnconsumedBeans(t *testing.T) {
	ctx := appctx.New()
	ctx.Instance("configValue", &configValue{v: "cv"})
	ctx.Instance("databaseUrl", "postgres://localhost/app")

	var extras map[string]any
	var positional *configValue
	ctx.Bean("consumer", func(cv *configValue, rest map[string]any) *Service {
		positional = cv
		extras = rest
		return &Service{Name: "consumer"}
	}, appctx.CollectRemaining())

	require.NoError(t, ctx.Refresh())
	require.Equal(t, "cv", positional.v)
	require.Contains(t, extras, "databaseUrl")
	require.NotContains(t, extras, "configValue")
	require.Equal(t, "postgres://localhost/app", extras["databaseUrl"])
}

func TestResolve_CatchAllExcludesNamedBindings(t *testing.T) {
	ctx := appctx.New()
	ctx.Instance("databaseUrl", "postgres://localhost/app")
	ctx.Instance("cacheUrl", "redis://localhost")

	var extras map[string]any
	ctx.Bean("consumer", func(url string, rest map[string]any) *Service {
		extras = rest
		return &Service{}
	}, appctx.Named("databaseUrl"), appctx.CollectRemaining())

	require.NoError(t, ctx.Refresh())
	require.Contains(t, extras, "cacheUrl")
	require.NotContains(t, extras, "databaseUrl")
}

func TestResolve_CatchAllParameterMustBeMap(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("consumer", func(rest []string) *Service { return &Service{} },
		appctx.CollectRemaining())

	err := ctx.Refresh()
	var inv *appctx.InvalidDefinitionError
	require.ErrorAs(t, err, &inv)
}

// ── defective factories ──────────────────────────────────────────────────────

func TestRefresh_RejectsNonFunctionFactory(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("bad", 42)

	err := ctx.Refresh()
	var inv *appctx.InvalidDefinitionError
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "bad", inv.Bean)
}

func TestRefresh_RejectsBadReturnShape(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("bad", func() {})

	err := ctx.Refresh()
	var inv *appctx.InvalidDefinitionError
	require.ErrorAs(t, err, &inv)
}

func TestRefresh_RejectsOptionsExceedingParameters(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("bad", func() *Service { return &Service{} },
		appctx.Named("a"), appctx.Named("b"))

	err := ctx.Refresh()
	var inv *appctx.InvalidDefinitionError
	require.ErrorAs(t, err, &inv)
}
