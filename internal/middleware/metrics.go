package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	publishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_publish_total",
			Help: "Total number of marketplace publish attempts by outcome.",
		},
		[]string{"outcome"},
	)

	importTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marketplace_import_total",
			Help: "Total number of marketplace version imports.",
		},
	)
)

// Metrics 记录请求计数与耗时指标
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// CountPublish 记录一次发布结果
func CountPublish(outcome string) {
	publishTotal.WithLabelValues(outcome).Inc()
}

// CountImport 记录一次导入
func CountImport() {
	importTotal.Inc()
}
