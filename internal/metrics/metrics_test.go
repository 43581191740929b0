package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMiddleware_LabelsByRoutePattern verifies requests are counted per route template
func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/redirect/{offerId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/redirect/{offerId}", "302"))

	for _, id := range []string{"o1", "o2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/redirect/"+id, nil))
		require.Equal(t, http.StatusFound, rec.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/redirect/{offerId}", "302"))
	assert.Equal(t, before+2, after)
}

// TestHandler_ExposesCollectors verifies the scrape endpoint includes service metrics
func TestHandler_ExposesCollectors(t *testing.T) {
	ClicksRecorded.WithLabelValues("ok").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "affiliate_clicks_recorded_total")
}
