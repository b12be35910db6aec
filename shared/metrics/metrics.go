package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hotel"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		},
		[]string{"route", "method", "code"},
	)

	managerOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "manager_operations_total",
			Help:      "Record manager operations by collection, operation and outcome.",
		},
		[]string{"collection", "operation", "outcome"},
	)

	docstoreLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "docstore_call_seconds",
			Help:      "Document store call latency by backend and call.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"backend", "call"},
	)

	rateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter, by limiter source.",
		},
		[]string{"source"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, managerOperations, docstoreLatency, rateLimited)
	})
}

func IncHTTP(route, method string, code int) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
}

func IncOperation(collection, operation, outcome string) {
	managerOperations.WithLabelValues(collection, operation, outcome).Inc()
}

func ObserveDocStore(backend, call string, started time.Time) {
	docstoreLatency.WithLabelValues(backend, call).Observe(time.Since(started).Seconds())
}

func IncRateLimited(source string) {
	rateLimited.WithLabelValues(source).Inc()
}
