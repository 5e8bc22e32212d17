// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queriesTotal counts answered queries by method and result
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bayes_queries_total",
		Help: "Total queries answered by method and result",
	}, []string{"method", "result"})

	// queryDuration tracks end-to-end query latency
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bayes_query_duration_seconds",
		Help:    "Query evaluation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00005, 2, 16), // 50us to ~1.6s
	}, []string{"method"})

	// queryOperations tracks arithmetic cost per query
	queryOperations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bayes_query_operations",
		Help:    "Additions and multiplications performed per query",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"method", "operation"})

	batchLines = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bayes_batch_lines",
		Help:    "Number of query lines per batch",
		Buckets: []float64{1, 5, 10, 50, 100, 500, 1000},
	})

	networkCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bayes_network_cache_total",
		Help: "Compiled network cache lookups by result",
	}, []string{"result"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bayes_http_requests_total",
		Help: "HTTP requests by method, route pattern and status code",
	}, []string{"method", "route", "code"})
)

// ObserveQuery records one query evaluation. Failed queries only count
// towards the error total and latency.
func ObserveQuery(method string, d time.Duration, additions, multiplications int, err error) {
	queryDuration.WithLabelValues(method).Observe(d.Seconds())
	if err != nil {
		queriesTotal.WithLabelValues(method, "error").Inc()
		return
	}
	queriesTotal.WithLabelValues(method, "ok").Inc()
	queryOperations.WithLabelValues(method, "additions").Observe(float64(additions))
	queryOperations.WithLabelValues(method, "multiplications").Observe(float64(multiplications))
}

func ObserveBatch(lines int) {
	batchLines.Observe(float64(lines))
}

func CacheHit() {
	networkCache.WithLabelValues("hit").Inc()
}

func CacheMiss() {
	networkCache.WithLabelValues("miss").Inc()
}

// ObserveHTTP counts one request. route is the matched route pattern, not
// the raw path, so ids do not explode the label set.
func ObserveHTTP(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
