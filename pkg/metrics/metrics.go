package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Ingestion
	IngestRecordsTotal  *prometheus.CounterVec
	IngestRejectedTotal *prometheus.CounterVec

	// Calendar
	CalendarBuildsTotal   *prometheus.CounterVec
	CalendarBuildDuration *prometheus.HistogramVec

	// Upstream
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	serviceName string
}

// New регистрирует метрики в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		HTTPRequestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: constLabels,
		}),

		IngestRecordsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "ingest_records_total",
			Help:        "Number of raw booking records processed by the ingestion adapter",
			ConstLabels: constLabels,
		}, []string{"result"}),

		IngestRejectedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "ingest_rejected_total",
			Help:        "Number of raw booking records rejected during ingestion",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		CalendarBuildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_builds_total",
			Help:        "Number of calendar views built",
			ConstLabels: constLabels,
		}, []string{"view"}),

		CalendarBuildDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "calendar_build_duration_seconds",
			Help:        "Time spent building calendar views including data fetch",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"view"}),

		UpstreamRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Number of requests to the booking source",
			ConstLabels: constLabels,
		}, []string{"source", "operation", "result"}),

		UpstreamRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Booking source request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"source", "operation"}),
	}
}

// ServiceName имя сервиса в метках
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// RecordRejected учитывает отброшенные при нормализации записи
func (m *Metrics) RecordRejected(reason string, count int) {
	if count <= 0 {
		return
	}
	m.IngestRejectedTotal.WithLabelValues(reason).Add(float64(count))
	m.IngestRecordsTotal.WithLabelValues("rejected").Add(float64(count))
}

// RecordAccepted учитывает успешно нормализованные записи
func (m *Metrics) RecordAccepted(count int) {
	if count <= 0 {
		return
	}
	m.IngestRecordsTotal.WithLabelValues("accepted").Add(float64(count))
}

// ObserveBuild учитывает построение представления календаря (grid, day, export)
func (m *Metrics) ObserveBuild(view string, seconds float64) {
	m.CalendarBuildsTotal.WithLabelValues(view).Inc()
	m.CalendarBuildDuration.WithLabelValues(view).Observe(seconds)
}

// ObserveUpstream учитывает обращение к источнику бронирований
func (m *Metrics) ObserveUpstream(source, operation string, err error, seconds float64) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.UpstreamRequestsTotal.WithLabelValues(source, operation, result).Inc()
	m.UpstreamRequestDuration.WithLabelValues(source, operation).Observe(seconds)
}
