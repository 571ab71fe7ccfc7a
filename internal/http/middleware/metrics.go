package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
	AuthFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Total requests rejected by the bearer auth middleware",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests)
	prometheus.MustRegister(AuthFailures)
}

// Metrics counts every handled request against its registered route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
