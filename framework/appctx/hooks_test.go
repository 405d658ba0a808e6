package appctx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-appctx/framework/appctx"
)

// ── stub instances with hooks ────────────────────────────────────────────────

type hookRecorder struct{ calls []string }

func (h *hookRecorder) First()  { h.calls = append(h.calls, "First") }
func (h *hookRecorder) Second() { h.calls = append(h.calls, "Second") }

type flakyClient struct {
	err       error
	connected bool
}

func (c *flakyClient) Connect() error {
	if c.err != nil {
		return c.err
	}
	c.connected = true
	return nil
}

type clientService struct {
	svc       *Service
	connected bool
}

func (c *clientService) Connect() { c.connected = true }

// ── tests ────────────────────────────────────────────────────────────────────

func TestPostConstruct_RunsAfterFactory(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("client", func() *flakyClient { return &flakyClient{} },
		appctx.PostConstruct("Connect"))

	require.NoError(t, ctx.Refresh())
	client := appctx.MustBeanOf[*flakyClient](ctx)
	require.True(t, client.connected)
}

func TestPostConstruct_DeclaredOrder(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("recorder", func() *hookRecorder { return &hookRecorder{} },
		appctx.PostConstruct("Second", "First"))

	require.NoError(t, ctx.Refresh())
	rec := appctx.MustBeanOf[*hookRecorder](ctx)
	require.Equal(t, []string{"Second", "First"}, rec.calls)
}

func TestPostConstruct_WithDependencies(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("service", func() *Service { return &Service{Name: "cfg"} })
	ctx.Bean("client", func(svc *Service) *clientService { return &clientService{svc: svc} },
		appctx.PostConstruct("Connect"))

	require.NoError(t, ctx.Refresh())
	client := appctx.MustBeanOf[*clientService](ctx)
	require.True(t, client.connected)
	require.Equal(t, "cfg", client.svc.Name)
}

func TestPostConstruct_ErrorLeavesBeanUnregistered(t *testing.T) {
	sentinel := errors.New("connect refused")
	ctx := appctx.New()
	ctx.Bean("stable", func() *Service { return &Service{Name: "stable"} })
	ctx.Bean("flaky", func() *flakyClient { return &flakyClient{err: sentinel} },
		appctx.PostConstruct("Connect"))

	err := ctx.Refresh()
	require.ErrorIs(t, err, sentinel)

	// Commit happens only after hooks succeed: the failing bean must be
	// invisible, the earlier hook-free bean still retrievable.
	_, err = ctx.GetBean("flaky")
	var nf *appctx.NotFoundError
	require.ErrorAs(t, err, &nf)

	stable, err := ctx.GetBean("stable")
	require.NoError(t, err)
	require.Equal(t, "stable", stable.(*Service).Name)
}

func TestPostConstruct_MissingMethodIsInvalid(t *testing.T) {
	ctx := appctx.New()
	ctx.Bean("recorder", func() *hookRecorder { return &hookRecorder{} },
		appctx.PostConstruct("Nonexistent"))

	err := ctx.Refresh()
	var inv *appctx.InvalidDefinitionError
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "recorder", inv.Bean)
}
