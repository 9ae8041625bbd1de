// Package metrics exposes store and HTTP counters for Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	records   *prometheus.GaugeVec
	requests  *prometheus.CounterVec
}

// New builds a private registry so tests and parallel servers never clash on
// the global one.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_store_mutations_total",
			Help: "Entity store mutations by entity, operation and whether the id matched.",
		}, []string{"entity", "op", "found"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "admin_store_records",
			Help: "Records currently held per entity store.",
		}, []string{"entity"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(
		m.mutations,
		m.records,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveMutation satisfies repositories.MutationObserver.
func (m *Metrics) ObserveMutation(entity, op string, found bool, size int) {
	m.mutations.WithLabelValues(entity, op, strconv.FormatBool(found)).Inc()
	m.records.WithLabelValues(entity).Set(float64(size))
}

// SetRecords seeds the gauge before any mutation happens.
func (m *Metrics) SetRecords(entity string, size int) {
	m.records.WithLabelValues(entity).Set(float64(size))
}

// Middleware counts requests by matched route template, not raw path.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
