package worker

import (
	"context"
	"log/slog"
	"testing"

	"devicequote/config"
	"devicequote/internal/delivery/worker/handler"
	mockSvc "devicequote/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestParams(t *testing.T, enabled bool) ServerParams {
	t.Helper()

	cfg := &config.Config{Worker: &config.WorkerConfig{Enabled: enabled, Port: 18081}}
	logger := slog.New(slog.DiscardHandler)

	return ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config: cfg,
			Logger: logger,
			Cache:  mockSvc.NewMockPricingCache(t),
		}),
	}
}

func TestNewServer_Disabled(t *testing.T) {
	srv, err := NewServer(newTestParams(t, false))
	require.NoError(t, err)

	assert.IsType(t, disabledServer{}, srv)
	assert.NoError(t, srv.Serve(context.Background()))
}

func TestNewServer_Enabled(t *testing.T) {
	srv, err := NewServer(newTestParams(t, true))
	require.NoError(t, err)

	ws, ok := srv.(*workerServer)
	require.True(t, ok)

	routes := map[string]bool{}
	for _, r := range ws.server.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	assert.True(t, routes["GET /health"])
	assert.True(t, routes["POST /push"])
}
