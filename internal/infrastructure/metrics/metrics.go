package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PayappCallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payapp_callbacks_total",
			Help: "Payapp callbacks received, by channel, outcome and reconcile status",
		},
		[]string{"channel", "outcome", "status"},
	)

	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Operator notifications attempted, by channel and result",
		},
		[]string{"channel", "result"},
	)

	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_total",
			Help: "Public form submissions accepted, by kind",
		},
		[]string{"kind"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)
)

const (
	ResultSent   = "sent"
	ResultFailed = "failed"
)

// ObserveNotification records a notification attempt on channel ("slack", "mail").
func ObserveNotification(channel string, err error) {
	result := ResultSent
	if err != nil {
		result = ResultFailed
	}
	Notifications.WithLabelValues(channel, result).Inc()
}

// GinMiddleware times every request under its route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
