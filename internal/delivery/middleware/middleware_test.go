package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devicequote/config"
	deliverycontext "devicequote/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, buf *bytes.Buffer, debug bool) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	return e
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(t, &buf, false)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-abc", rec.Body.String())
	assert.Equal(t, "client-abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"request_id":"client-abc"`)
	assert.Contains(t, buf.String(), `"route":"/ping"`)
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	tests := []string{"", "has space", strings.Repeat("a", deliverycontext.MaxRequestIDLength+1)}

	for _, id := range tests {
		var buf bytes.Buffer
		e := newTestEcho(t, &buf, false)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, id)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Len(t, rec.Body.String(), 36, "header %q", id)
	}
}

func TestLoggerMiddleware_SkipsProbesUnlessDebug(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(t, &buf, false)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	buf.Reset()
	e = newTestEcho(t, &buf, true)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Contains(t, buf.String(), `"uri":"/health"`)
}
