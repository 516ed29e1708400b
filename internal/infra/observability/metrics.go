// Package observability exposes the service's Prometheus metrics.
package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	dailyLogs       *prometheus.CounterVec
	expensesAdded   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers every collector on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		dailyLogs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "budget_daily_logs_total",
			Help: "Daily ledger rows written, by action",
		}, []string{"action"}),
		expensesAdded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "budget_expenses_added_total",
			Help: "Expenses recorded, by category",
		}, []string{"category"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "budget_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// IncrDailyLog counts a ledger row write.
func (m *Metrics) IncrDailyLog(action string) {
	m.dailyLogs.WithLabelValues(action).Inc()
}

// IncrExpenseAdded counts a recorded expense.
func (m *Metrics) IncrExpenseAdded(category string) {
	m.expensesAdded.WithLabelValues(category).Inc()
}

// RecordRequestDuration observes the latency of one HTTP request.
func (m *Metrics) RecordRequestDuration(method, route string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Middleware times every request under its route template, so path
// parameters do not explode label cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordRequestDuration(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
