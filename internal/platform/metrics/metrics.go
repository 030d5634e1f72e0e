// Package metrics exposes Prometheus instrumentation for auth operations.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for auth counters.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	// RegisterTotal counts registration attempts by outcome.
	RegisterTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_register_total",
		Help: "Registration attempts by outcome.",
	}, []string{"outcome"})

	// LoginTotal counts login attempts by outcome.
	LoginTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_login_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	// LogoutTotal counts logout calls by whether a live session was destroyed.
	LogoutTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_logout_total",
		Help: "Logout calls by result.",
	}, []string{"result"})
)

// Handler returns the /metrics endpoint handler.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
