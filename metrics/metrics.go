// Package metrics exposes Prometheus instrumentation for the HTTP surface and
// the outcomes of the goal calculations.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

type Recorder interface {
	ObserveRequest(route string, status int, elapsed time.Duration)
	ObserveCalculation(operation, outcome string)
	ObserveHorizon(years int, reached bool)
	ObserveRateLimited(route string)
}

type Metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.HistogramVec
	calculations *prometheus.CounterVec
	horizon      prometheus.Histogram
	unreached    prometheus.Counter
	rateLimited  *prometheus.CounterVec
}

// New registers the collectors on a private registry under namespace.
func New(namespace string, withRuntime bool) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Goal calculations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		horizon: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "achievement_years",
			Help:      "Projected years until the down payment is reached.",
			Buckets:   []float64{0, 1, 2, 3, 5, 7, 10, 15, 20, 30, 50},
		}),
		unreached: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "horizon_unreached_total",
			Help:      "Projections that saturated at the maximum horizon.",
		}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}, []string{"route"}),
	}

	m.registry.MustRegister(m.requests, m.calculations, m.horizon, m.unreached, m.rateLimited)
	if withRuntime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveCalculation(operation, outcome string) {
	m.calculations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveHorizon(years int, reached bool) {
	m.horizon.Observe(float64(years))
	if !reached {
		m.unreached.Inc()
	}
}

func (m *Metrics) ObserveRateLimited(route string) {
	m.rateLimited.WithLabelValues(route).Inc()
}

type nopRecorder struct{}

func (nopRecorder) ObserveRequest(string, int, time.Duration) {}
func (nopRecorder) ObserveCalculation(string, string)         {}
func (nopRecorder) ObserveHorizon(int, bool)                  {}
func (nopRecorder) ObserveRateLimited(string)                 {}

// NewNopRecorder returns a Recorder that drops every observation.
func NewNopRecorder() Recorder { return nopRecorder{} }
