// Package metrics defines the prometheus collectors of the service:
// HTTP request metrics (fed by the API middleware) and scheduling engine
// counters (appointments committed, speculative conflict retries).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all registered collectors.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AppointmentsScheduled prometheus.Counter
	ConflictRetries       prometheus.Counter
}

// New registers the collectors on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		AppointmentsScheduled: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "scheduler_appointments_total",
			Help:        "Total number of appointments committed to calendars.",
			ConstLabels: constLabels,
		}),

		ConflictRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "scheduler_conflict_retries_total",
			Help:        "Total number of speculative retries caused by same-vehicle conflicts.",
			ConstLabels: constLabels,
		}),
	}
}

// AppointmentScheduled increments the committed appointments counter.
func (m *Metrics) AppointmentScheduled() {
	m.AppointmentsScheduled.Inc()
}

// ConflictRetry increments the speculative retry counter.
func (m *Metrics) ConflictRetry() {
	m.ConflictRetries.Inc()
}

// Nop is a no-op collector used when metrics are disabled in config.
type Nop struct{}

func (Nop) AppointmentScheduled() {}

func (Nop) ConflictRetry() {}
