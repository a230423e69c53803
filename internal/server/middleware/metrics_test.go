package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/aceup/plansync/internal/metrics"
)

func TestMetrics_CountsRequests(t *testing.T) {
	m := metrics.NewServer(prometheus.NewRegistry())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/records/{dataType}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Metrics(m)(mux)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/records/assignment", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	// The route label is the registered pattern, not the raw path
	got := testutil.ToFloat64(m.Requests.WithLabelValues("GET", "GET /api/v1/records/{dataType}", "200"))
	assert.Equal(t, float64(3), got)
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	m := metrics.NewServer(prometheus.NewRegistry())

	handler := Metrics(m)(http.NewServeMux())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	got := testutil.ToFloat64(m.Requests.WithLabelValues("GET", "unmatched", "404"))
	assert.Equal(t, float64(1), got)
}
