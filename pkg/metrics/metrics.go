package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для вызова на nil (метрики выключены)
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	ReservationsCreated  prometheus.Counter
	ReservationsRejected *prometheus.CounterVec
	SideEffectFailures   *prometheus.CounterVec
}

// New создает метрики и регистрирует их в стандартном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database query errors",
			ConstLabels: labels,
		}, []string{"operation"}),

		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: labels,
		}, []string{"state"}),

		ReservationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Confirmed reservations",
			ConstLabels: labels,
		}),

		ReservationsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_rejected_total",
			Help:        "Rejected reservation attempts by reason",
			ConstLabels: labels,
		}, []string{"reason"}),

		SideEffectFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_side_effect_failures_total",
			Help:        "Failed best-effort side effects after booking (invoice, notification, weekly slot)",
			ConstLabels: labels,
		}, []string{"kind"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBConnections,
		m.ReservationsCreated,
		m.ReservationsRejected,
		m.SideEffectFailures,
	)

	return m
}

func (m *Metrics) IncReservationCreated() {
	if m == nil {
		return
	}
	m.ReservationsCreated.Inc()
}

func (m *Metrics) IncReservationRejected(reason string) {
	if m == nil {
		return
	}
	m.ReservationsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncSideEffectFailure(kind string) {
	if m == nil {
		return
	}
	m.SideEffectFailures.WithLabelValues(kind).Inc()
}
