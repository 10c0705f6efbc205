package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	fallbackTotal      *prometheus.CounterVec
	remoteFailureTotal *prometheus.CounterVec

	overlayOpsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		fallbackTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resolver_fallback_total",
				Help: "Operations resolved from the local tiers after a remote failure",
			},
			[]string{"service", "operation"},
		),
		remoteFailureTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resolver_remote_failures_total",
				Help: "Remote service calls that failed as unavailable",
			},
			[]string{"service", "operation"},
		),
		overlayOpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "overlay_operations_total",
				Help: "Local overlay store operations",
			},
			[]string{"service", "collection", "operation"},
		),
	}
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// IncFallback учитывает срабатывание fallback для операции
func (m *Metrics) IncFallback(operation string) {
	m.fallbackTotal.WithLabelValues(m.serviceName, operation).Inc()
}

// IncRemoteFailure учитывает недоступность удаленного сервиса
func (m *Metrics) IncRemoteFailure(operation string) {
	m.remoteFailureTotal.WithLabelValues(m.serviceName, operation).Inc()
}

// IncOverlayOp учитывает операцию с локальным overlay хранилищем
func (m *Metrics) IncOverlayOp(collection, operation string) {
	m.overlayOpsTotal.WithLabelValues(m.serviceName, collection, operation).Inc()
}
