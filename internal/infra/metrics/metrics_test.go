package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_HandlerExposesCounters(t *testing.T) {
	reg := NewRegistry()
	reg.CacheHits.Inc()
	reg.CacheHits.Inc()
	reg.QuotesResolved.WithLabelValues("buyback", "anchor").Inc()

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "devicequote_cache_hits_total 2")
	assert.Contains(t, string(body), `devicequote_quotes_resolved_total{source="anchor",type="buyback"} 1`)
}
