// Package metrics defines the Prometheus collectors exposed by the
// service. Collectors are registered on the default registry and
// observed from the HTTP middleware.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus коллекторов сервиса
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	SyncTotal       *prometheus.CounterVec
}

// New registers and returns the service collectors
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		SyncTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_sync_total",
			Help:        "Calendar sync attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// ObserveRequest records a finished HTTP request
func (m *Metrics) ObserveRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveSync records a calendar sync attempt outcome
// (confirmed, auth_denied, not_found, not_configured, failed)
func (m *Metrics) ObserveSync(outcome string) {
	m.SyncTotal.WithLabelValues(outcome).Inc()
}
