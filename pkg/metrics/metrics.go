package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик Prometheus сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBOpenConns     prometheus.Gauge
	DBInUseConns    prometheus.Gauge
	DBIdleConns     prometheus.Gauge

	BookingsSubmitted   prometheus.Counter
	NotificationsFailed *prometheus.CounterVec
	RateLimited         prometheus.Counter
}

// New создает метрики в собственном registry с лейблом service
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"service": serviceName}
	factory := func(c prometheus.Collector) prometheus.Collector {
		registry.MustRegister(c)
		return c
	}

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = factory(prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests",
		ConstLabels: constLabels,
	}, []string{"method", "route", "status"})).(*prometheus.CounterVec)

	m.HTTPRequestDuration = factory(prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "http_request_duration_seconds",
		Help:        "Duration of HTTP requests",
		Buckets:     prometheus.DefBuckets,
		ConstLabels: constLabels,
	}, []string{"method", "route"})).(*prometheus.HistogramVec)

	m.DBQueryDuration = factory(prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "db_query_duration_seconds",
		Help:        "Duration of database queries",
		Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		ConstLabels: constLabels,
	}, []string{"operation"})).(*prometheus.HistogramVec)

	m.DBQueryErrors = factory(prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "db_query_errors_total",
		Help:        "Total number of failed database queries",
		ConstLabels: constLabels,
	}, []string{"operation"})).(*prometheus.CounterVec)

	m.DBOpenConns = factory(prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "db_open_connections",
		Help:        "Number of established connections",
		ConstLabels: constLabels,
	})).(prometheus.Gauge)

	m.DBInUseConns = factory(prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "db_in_use_connections",
		Help:        "Number of connections currently in use",
		ConstLabels: constLabels,
	})).(prometheus.Gauge)

	m.DBIdleConns = factory(prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "db_idle_connections",
		Help:        "Number of idle connections",
		ConstLabels: constLabels,
	})).(prometheus.Gauge)

	m.BookingsSubmitted = factory(prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "bookings_submitted_total",
		Help:        "Total number of persisted booking submissions",
		ConstLabels: constLabels,
	})).(prometheus.Counter)

	m.NotificationsFailed = factory(prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "notifications_failed_total",
		Help:        "Total number of owner notifications that could not be delivered",
		ConstLabels: constLabels,
	}, []string{"channel"})).(*prometheus.CounterVec)

	m.RateLimited = factory(prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "rate_limited_total",
		Help:        "Total number of requests rejected by the rate limiter",
		ConstLabels: constLabels,
	})).(prometheus.Counter)

	return m
}

// Handler http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// ObservePool обновляет метрики connection pool
func (m *Metrics) ObservePool(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.DBOpenConns.Set(float64(stats.OpenConnections))
	m.DBInUseConns.Set(float64(stats.InUse))
	m.DBIdleConns.Set(float64(stats.Idle))
}

// IncBookingsSubmitted увеличивает счетчик сохраненных заявок
func (m *Metrics) IncBookingsSubmitted() {
	if m == nil {
		return
	}
	m.BookingsSubmitted.Inc()
}

// IncNotificationFailed увеличивает счетчик неотправленных уведомлений
func (m *Metrics) IncNotificationFailed(channel string) {
	if m == nil {
		return
	}
	m.NotificationsFailed.WithLabelValues(channel).Inc()
}

// IncRateLimited увеличивает счетчик отклоненных лимитером запросов
func (m *Metrics) IncRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}
