package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request counter by endpoint and status
	HTTPRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crm_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// Login counters
	LoginCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_auth_login_total",
			Help: "Total number of login attempts",
		},
	)

	// Signup counters
	SignupCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_auth_signup_total",
			Help: "Total number of signup attempts",
		},
	)

	// Error counters
	AuthErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // type can be "invalid_credentials", "duplicate_email", etc.
	)
)

// RecordAuthError increments the auth error counter for the given type.
func RecordAuthError(errorType string) {
	AuthErrorCounter.WithLabelValues(errorType).Inc()
}

// Middleware records a counter and duration sample per handled request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		HTTPRequestCounter.WithLabelValues(endpoint, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(endpoint, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
