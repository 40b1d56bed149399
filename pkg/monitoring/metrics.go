package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Authorization metrics
	authzDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_decisions_total",
			Help: "Total number of authorization filter decisions",
		},
		[]string{"role", "entity", "decision"},
	)

	// PHI access metrics
	phiAccessTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phi_access_total",
			Help: "Total number of PHI access attempts",
		},
		[]string{"role", "resource", "granted"},
	)

	// Authentication metrics
	authAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		authzDecisionsTotal,
		phiAccessTotal,
		authAttemptsTotal,
	)
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request observation
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordAuthzDecision records an authorization filter decision
func RecordAuthzDecision(role, entity, decision string) {
	authzDecisionsTotal.WithLabelValues(role, entity, decision).Inc()
}

// RecordPHIAccess records a PHI access attempt
func RecordPHIAccess(role, resource string, granted bool) {
	phiAccessTotal.WithLabelValues(role, resource, strconv.FormatBool(granted)).Inc()
}

// RecordAuthAttempt records an authentication attempt
func RecordAuthAttempt(status string) {
	authAttemptsTotal.WithLabelValues(status).Inc()
}
