// Package metrics holds the Prometheus instrumentation for noise sampling,
// parameter-list construction, and grid evaluation throughput.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the sampling library.
type Metrics struct {
	treeBuilds      *prometheus.CounterVec
	treeBuildTime   prometheus.Histogram
	treeNodeCount   prometheus.Gauge
	treeSearches    *prometheus.CounterVec
	sampleCalls     *prometheus.CounterVec
	sampleDuration  *prometheus.HistogramVec
	gridPoints      *prometheus.CounterVec
	gridWaitTime    prometheus.Histogram
	serverStartTime prometheus.Gauge

	registry *prometheus.Registry
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		treeBuilds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "multinoise_tree_builds_total",
				Help: "Total number of parameter-list tree builds by outcome",
			},
			[]string{"status"}, // "success", "error"
		),

		treeBuildTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "multinoise_tree_build_duration_seconds",
				Help:    "Parameter-list tree build duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		treeNodeCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "multinoise_tree_entries",
				Help: "Number of entries in the most recently built parameter list",
			},
		),

		treeSearches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "multinoise_tree_searches_total",
				Help: "Total number of nearest-biome lookups",
			},
			[]string{"result"}, // "found"
		),

		sampleCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "multinoise_sample_calls_total",
				Help: "Total number of noise sample calls by noise kind",
			},
			[]string{"kind"}, // "improved", "perlin", "normal", "climate"
		),

		sampleDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "multinoise_sample_duration_seconds",
				Help:    "Noise sample call duration in seconds by noise kind",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),

		gridPoints: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "multinoise_grid_points_total",
				Help: "Total number of lattice points evaluated by grid operation",
			},
			[]string{"operation"},
		),

		gridWaitTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "multinoise_grid_limiter_wait_seconds",
				Help:    "Time spent waiting on the rate limiter per grid point",
				Buckets: prometheus.DefBuckets,
			},
		),

		serverStartTime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "multinoise_start_time_seconds",
				Help: "Unix timestamp when this process started",
			},
		),

		registry: registry,
	}

	m.registry.MustRegister(
		m.treeBuilds,
		m.treeBuildTime,
		m.treeNodeCount,
		m.treeSearches,
		m.sampleCalls,
		m.sampleDuration,
		m.gridPoints,
		m.gridWaitTime,
		m.serverStartTime,
	)

	m.serverStartTime.SetToCurrentTime()

	return m
}

// Handler returns an HTTP handler for exposing metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		Registry:          m.registry,
	})
}

// RecordTreeBuild records a parameter-list tree build outcome, its
// duration, and the entry count it holds. A nil receiver is a no-op, so
// callers that were not handed a Metrics instance can record
// unconditionally.
func (m *Metrics) RecordTreeBuild(entryCount int, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.treeBuilds.WithLabelValues(status).Inc()
	m.treeBuildTime.Observe(duration.Seconds())
	if err == nil {
		m.treeNodeCount.Set(float64(entryCount))
	}
}

// RecordTreeSearch records a nearest-biome lookup.
func (m *Metrics) RecordTreeSearch() {
	if m == nil {
		return
	}
	m.treeSearches.WithLabelValues("found").Inc()
}

// RecordSample records one noise sample call and its duration.
func (m *Metrics) RecordSample(kind string, duration time.Duration) {
	if m == nil {
		return
	}
	m.sampleCalls.WithLabelValues(kind).Inc()
	m.sampleDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordGridPoints records how many lattice points a grid operation
// evaluated.
func (m *Metrics) RecordGridPoints(operation string, count int) {
	if m == nil {
		return
	}
	m.gridPoints.WithLabelValues(operation).Add(float64(count))
}

// RecordGridWait records time spent blocked on a rate limiter between grid
// points.
func (m *Metrics) RecordGridWait(duration time.Duration) {
	if m == nil {
		return
	}
	m.gridWaitTime.Observe(duration.Seconds())
}
