package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercise_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by method, route template and status code.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "exercise_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by method and route template.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	storeOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercise_service",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Exercise store operations, by operation and outcome.",
	}, []string{"operation", "outcome"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, storeOperations)
}

// RecordRequest observes one completed HTTP request.
func RecordRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordStoreOperation counts a store call; outcome is a short label such
// as "ok", "not_found" or an error kind.
func RecordStoreOperation(operation, outcome string) {
	storeOperations.WithLabelValues(operation, outcome).Inc()
}
