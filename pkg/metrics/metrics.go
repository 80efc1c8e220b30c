package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы запросов к внешнему API и кэшу
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	cacheRequestsTotal *prometheus.CounterVec
	cacheInvalidations *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled by the BFF",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests handled by the BFF",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		upstreamRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests sent to the marketplace API",
		}, []string{"service", "method", "endpoint", "outcome"}),
		upstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of requests sent to the marketplace API",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "endpoint"}),
		cacheRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "query_cache_requests_total",
			Help: "Query cache lookups by result",
		}, []string{"service", "result"}),
		cacheInvalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "query_cache_invalidations_total",
			Help: "Query cache invalidations by root key",
		}, []string{"service", "root"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.upstreamRequestsTotal,
		m.upstreamRequestDuration,
		m.cacheRequestsTotal,
		m.cacheInvalidations,
	)

	return m
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveUpstream фиксирует запрос к внешнему API
func (m *Metrics) ObserveUpstream(method, endpoint, outcome string, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(m.serviceName, method, endpoint, outcome).Inc()
	m.upstreamRequestDuration.WithLabelValues(m.serviceName, method, endpoint).Observe(duration.Seconds())
}

// ObserveCache фиксирует результат обращения к кэшу (hit, miss, error)
func (m *Metrics) ObserveCache(result string) {
	m.cacheRequestsTotal.WithLabelValues(m.serviceName, result).Inc()
}

// ObserveInvalidation фиксирует инвалидацию ключей кэша
func (m *Metrics) ObserveInvalidation(root string) {
	m.cacheInvalidations.WithLabelValues(m.serviceName, root).Inc()
}
