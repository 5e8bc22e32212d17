package middleware

import (
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"

	"github.com/YahelOmesi/Variable-Elimination/internal/metrics"
)

// MetricsCollector counts requests and error responses for /stats and
// reports status codes to Prometheus.
type MetricsCollector struct {
	requestCount *atomic.Int64
	errorCount   *atomic.Int64
}

func NewMetricsCollector(requestCount, errorCount *atomic.Int64) *MetricsCollector {
	return &MetricsCollector{
		requestCount: requestCount,
		errorCount:   errorCount,
	}
}

func (mc *MetricsCollector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mc.requestCount.Add(1)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		// 4xx and 5xx
		if rw.statusCode >= 400 {
			mc.errorCount.Add(1)
		}
		metrics.ObserveHTTP(r.Method, routePattern(r), rw.statusCode)
	})
}

// routePattern is the chi pattern that matched r, read after the handler
// has run. Empty outside a chi router.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
