// Package metrics exposes Prometheus instrumentation for the laneboard
// service: HTTP traffic, move operations, and record store health. All
// metrics live on a private registry served through /healthz.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "laneboard"
)

// Millisecond buckets tuned for a local store: most operations finish
// well under 10ms.
var latencyBuckets = []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000}

var (
	registry = prometheus.NewRegistry()
	factory  = promauto.With(registry)

	httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by endpoint, method, and status code.",
	}, []string{"endpoint", "method", "status"})

	httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   latencyBuckets,
	}, []string{"endpoint", "method", "status"})

	movesTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "board",
		Name:      "moves_total",
		Help:      "Completed move operations by kind (same_lane, cross_lane, noop).",
	}, []string{"kind"})

	moveDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "board",
		Name:      "move_duration_ms",
		Help:      "End-to-end move latency in milliseconds, including persistence.",
		Buckets:   latencyBuckets,
	})

	validationFailures = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "board",
		Name:      "validation_failures_total",
		Help:      "Rejected move inputs by error kind.",
	}, []string{"kind"})

	laneClients = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "board",
		Name:      "lane_clients",
		Help:      "Current number of clients per lane.",
	}, []string{"lane"})

	totalClients = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "board",
		Name:      "clients_total",
		Help:      "Total number of tracked clients.",
	})

	storeQueryDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "query_duration_ms",
		Help:      "Record store operation latency in milliseconds.",
		Buckets:   latencyBuckets,
	}, []string{"op"})

	storeErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "errors_total",
		Help:      "Record store failures by operation.",
	}, []string{"op"})
)

// GetRegistry returns the registry all service metrics are registered on.
func GetRegistry() *prometheus.Registry { return registry }

// RecordHTTPRequest counts one handled request.
func RecordHTTPRequest(endpoint, method, status string) {
	httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one request's latency.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

// RecordMove counts one completed move of the given kind.
func RecordMove(kind string) {
	movesTotal.WithLabelValues(kind).Inc()
}

// RecordMoveDuration observes one move's end-to-end latency.
func RecordMoveDuration(ms float64) {
	moveDuration.Observe(ms)
}

// RecordValidationFailure counts one rejected move input.
func RecordValidationFailure(kind string) {
	validationFailures.WithLabelValues(kind).Inc()
}

// UpdateLaneSize sets the current client count for one lane.
func UpdateLaneSize(lane string, n int) {
	laneClients.WithLabelValues(lane).Set(float64(n))
}

// UpdateTotalClients sets the total tracked client count.
func UpdateTotalClients(n int) {
	totalClients.Set(float64(n))
}

// RecordStoreQueryDuration observes one store operation's latency.
func RecordStoreQueryDuration(op string, ms float64) {
	storeQueryDuration.WithLabelValues(op).Observe(ms)
}

// RecordStoreError counts one store failure.
func RecordStoreError(op string) {
	storeErrors.WithLabelValues(op).Inc()
}
