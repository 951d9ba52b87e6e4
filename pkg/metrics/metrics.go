package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors exposed by the service
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	OrdersCreated   prometheus.Counter
	ShiftsCreated   prometheus.Counter
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
		OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "care_orders_created_total",
			Help:        "Total number of care orders materialized",
			ConstLabels: constLabels,
		}),
		ShiftsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "care_shifts_created_total",
			Help:        "Total number of care shifts generated from orders",
			ConstLabels: constLabels,
		}),
	}
}
