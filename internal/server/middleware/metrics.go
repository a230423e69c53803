package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aceup/plansync/internal/metrics"
)

// Metrics records per-request counters and latency histograms.
// Route is the registered pattern, not the raw path, to keep
// cardinality bounded.
func Metrics(m *metrics.Server) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}

			m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
			m.Duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
