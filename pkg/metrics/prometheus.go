// Package metrics provides Prometheus metrics for the cockpit estimation
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Estimation metrics
	estimatesComputed     prometheus.Counter
	capacityErrors        prometheus.Counter
	estimateDuration      prometheus.Histogram
	convergenceIterations prometheus.Histogram
	convergenceExhausted  prometheus.Counter

	// Batch metrics
	batchScenarios prometheus.Counter
	batchDropped   prometheus.Counter
	batchSize      prometheus.Histogram

	// Catalog gauges
	catalogItems    prometheus.Gauge
	catalogProfiles prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "cockpit",
		subsystem:        "estimator",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all Prometheus metrics on the configured registry.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.estimatesComputed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "estimates_computed_total",
		Help:      "Total number of estimates computed successfully",
	})

	m.capacityErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "capacity_errors_total",
		Help:      "Total number of scenarios rejected for non-positive capacity",
	})

	m.estimateDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "estimate_duration_milliseconds",
		Help:      "Wall-clock duration of single estimate computations in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.convergenceIterations = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pmo_convergence_iterations",
		Help:      "Number of fixed-point rounds until the PMO iteration stopped",
		Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	})

	m.convergenceExhausted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pmo_convergence_exhausted_total",
		Help:      "Total number of estimates where the iteration budget ran out before convergence",
	})

	m.batchScenarios = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_scenarios_total",
		Help:      "Total number of scenarios received on the batch path",
	})

	m.batchDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_scenarios_dropped_total",
		Help:      "Total number of batch scenarios omitted for non-positive capacity",
	})

	m.batchSize = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_size",
		Help:      "Number of scenarios per batch request",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})

	m.catalogItems = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_items",
		Help:      "Number of scope items in the L3 catalog",
	})

	m.catalogProfiles = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_profiles",
		Help:      "Number of named team profiles in the catalog",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method, and status code",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Process heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordEstimateComputed increments the estimates counter.
func RecordEstimateComputed() {
	globalManager.estimatesComputed.Inc()
}

// RecordCapacityError increments the capacity errors counter.
func RecordCapacityError() {
	globalManager.capacityErrors.Inc()
}

// RecordEstimateDuration records the wall-clock duration of one estimate.
func RecordEstimateDuration(durationMs float64) {
	globalManager.estimateDuration.Observe(durationMs)
}

// RecordConvergence records a fixed-point run's round count and whether the
// iteration budget ran out first.
func RecordConvergence(iterations int, converged bool) {
	globalManager.convergenceIterations.Observe(float64(iterations))
	if !converged {
		globalManager.convergenceExhausted.Inc()
	}
}

// RecordBatch records a batch request's size and how many scenarios were
// dropped for non-positive capacity.
func RecordBatch(size, dropped int) {
	globalManager.batchScenarios.Add(float64(size))
	globalManager.batchDropped.Add(float64(dropped))
	globalManager.batchSize.Observe(float64(size))
}

// UpdateCatalogSize sets the catalog item and profile gauges.
func UpdateCatalogSize(items, profiles int) {
	globalManager.catalogItems.Set(float64(items))
	globalManager.catalogProfiles.Set(float64(profiles))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the registry metrics are served from.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
