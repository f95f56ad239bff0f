// Package metrics exposes prometheus counters for security-relevant auth
// events.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	loginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Completed login callbacks by portal and result.",
		},
		[]string{"portal", "result"},
	)

	refreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_refreshes_total",
			Help: "Refresh token rotations by result.",
		},
		[]string{"result"},
	)

	reuseDetectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auth_refresh_reuse_detected_total",
		Help: "Refresh tokens presented after prior use; each one triggers mass revocation.",
	})

	revokedTokensTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auth_revoked_refresh_tokens_total",
		Help: "Refresh tokens revoked by logout, password change, or reuse response.",
	})

	handlerErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_handler_errors_total",
			Help: "Server faults surfaced by the auth handlers, by route.",
		},
		[]string{"route"},
	)
)

// Init registers the auth counters with the default registry.
func Init() {
	prometheus.MustRegister(loginsTotal, refreshesTotal, reuseDetectedTotal, revokedTokensTotal, handlerErrorsTotal)
}

// Handler serves the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Login records a completed login callback.
func Login(portal string, success bool) {
	loginsTotal.WithLabelValues(portal, result(success)).Inc()
}

// Refresh records a rotation attempt.
func Refresh(success bool) {
	refreshesTotal.WithLabelValues(result(success)).Inc()
}

// ReuseDetected records a confirmed refresh token reuse.
func ReuseDetected() {
	reuseDetectedTotal.Inc()
}

// HandlerError records a server fault escaping a handler on the given route.
func HandlerError(route string) {
	handlerErrorsTotal.WithLabelValues(route).Inc()
}

// TokensRevoked records n refresh tokens revoked in bulk.
func TokensRevoked(n int64) {
	revokedTokensTotal.Add(float64(n))
}

func result(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}
