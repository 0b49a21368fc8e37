package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Logins = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "docflow", Name: "logins_total", Help: "Number of successful logins."},
	)
	Signups = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "docflow", Name: "signups_total", Help: "Number of signups."},
	)
	DocumentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "docflow", Name: "documents_created_total", Help: "Number of documents created."},
	)
	AutodocsWritten = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "docflow", Name: "autodocs_written_total", Help: "Number of autodocs written."},
	)
	UserStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docflow", Name: "user_status_changes_total", Help: "Number of admin approval decisions by resulting status."},
		[]string{"status"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docflow", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docflow", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(Logins)
	reg.MustRegister(Signups)
	reg.MustRegister(DocumentsCreated)
	reg.MustRegister(AutodocsWritten)
	reg.MustRegister(UserStatusChanges)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
