package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "devicequote/internal/delivery/api/middleware"
	"devicequote/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
)

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

// newTestEcho mirrors the production error handler and validator.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func doRequest(e *echo.Echo, method, target string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// doGet is doRequest without a body.
func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	return doRequest(e, http.MethodGet, target, "")
}
