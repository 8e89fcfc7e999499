package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор Prometheus метрик сервиса.
// Методы записи безопасны для nil-получателя: при выключенных метриках передается nil.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	assignmentsSaved  *prometheus.CounterVec
	servicesCompleted prometheus.Counter
	statusTransitions *prometheus.CounterVec
	bedsDesc          *prometheus.Desc
}

// New создает и регистрирует метрики в собственном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		assignmentsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "assignments_saved_total",
			Help:        "Bed assignments saved, by mode (create, edit)",
			ConstLabels: constLabels,
		}, []string{"mode"}),
		servicesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "services_completed_total",
			Help:        "Treatments marked complete",
			ConstLabels: constLabels,
		}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bed_status_transitions_total",
			Help:        "Bed status transitions",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),
		bedsDesc: prometheus.NewDesc("beds", "Number of beds by status", []string{"status"}, constLabels),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.assignmentsSaved,
		m.servicesCompleted,
		m.statusTransitions,
	)

	return m
}

// Handler возвращает HTTP handler для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает registry (используется в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// AssignmentSaved увеличивает счетчик сохраненных назначений (mode: create или edit)
func (m *Metrics) AssignmentSaved(mode string) {
	if m == nil {
		return
	}
	m.assignmentsSaved.WithLabelValues(mode).Inc()
}

// ServiceCompleted увеличивает счетчик завершенных процедур
func (m *Metrics) ServiceCompleted() {
	if m == nil {
		return
	}
	m.servicesCompleted.Inc()
}

// StatusTransition фиксирует переход статуса кровати
func (m *Metrics) StatusTransition(from, to string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(from, to).Inc()
}

// TrackBeds регистрирует gauge beds{status}, значения читаются из source при каждом scrape
func (m *Metrics) TrackBeds(source func() map[string]int) error {
	if m == nil {
		return nil
	}
	return m.registry.Register(&bedsCollector{desc: m.bedsDesc, source: source})
}

type bedsCollector struct {
	desc   *prometheus.Desc
	source func() map[string]int
}

func (c *bedsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *bedsCollector) Collect(ch chan<- prometheus.Metric) {
	for status, count := range c.source() {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(count), status)
	}
}
