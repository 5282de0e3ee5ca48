// Package metrics exposes Prometheus collectors for dispatch outcomes and HTTP traffic.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"pushgate/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pushgate"

// Metrics owns a private Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	dispatchTotal    *prometheus.CounterVec
	tokensTotal      *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates and registers every collector.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		dispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "notifications_total",
				Help:      "Notifications dispatched, by delivery mode and terminal status",
			},
			[]string{"mode", "status"},
		),
		tokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "tokens_total",
				Help:      "Per-token delivery outcomes, by delivery mode",
			},
			[]string{"mode", "outcome"},
		),
		dispatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "duration_seconds",
				Help:      "Wall time of a dispatch from record creation to terminal status",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"mode"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests served, by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency, by method and route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.dispatchTotal,
		m.tokensTotal,
		m.dispatchDuration,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	)

	return m
}

// NewDeliveryMetrics exposes Metrics as the dispatch engine's recorder.
func NewDeliveryMetrics(m *Metrics) service.DeliveryMetrics {
	return m
}

// ObserveDispatch records one finished dispatch.
func (m *Metrics) ObserveDispatch(mode, status string, successCount, failureCount int, elapsed time.Duration) {
	m.dispatchTotal.WithLabelValues(mode, status).Inc()
	m.tokensTotal.WithLabelValues(mode, "success").Add(float64(successCount))
	m.tokensTotal.WithLabelValues(mode, "failure").Add(float64(failureCount))
	m.dispatchDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// ObserveHTTPRequest records one served request. route is the registered path template.
func (m *Metrics) ObserveHTTPRequest(method, route string, code int, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RegisterBackendGauge publishes the number of cached push backends.
func (m *Metrics) RegisterBackendGauge(registry service.PushBackendRegistry) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "cached_backends",
			Help:      "Push backends currently cached by the registry",
		},
		func() float64 {
			return float64(registry.Len())
		},
	))
}

// RegisterDBStats exports database/sql pool statistics for db.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
