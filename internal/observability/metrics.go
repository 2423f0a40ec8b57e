package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeSuccess labels signups that appended a participant.
	OutcomeSuccess = "success"
	// OutcomeNotFound labels signups naming an unknown activity.
	OutcomeNotFound = "not_found"
	// OutcomeAlreadyRegistered labels signups rejected as duplicates.
	OutcomeAlreadyRegistered = "already_registered"
)

var (
	signupAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_signup",
		Subsystem: "roster",
		Name:      "signup_attempts_total",
		Help:      "Signup attempts partitioned by outcome.",
	}, []string{"outcome"})
	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activity_signup",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupAttempts, participantsGauge)
}

// RecordSignupAttempt increments the attempt counter for the given outcome.
func RecordSignupAttempt(outcome string) {
	signupAttempts.WithLabelValues(outcome).Inc()
}

// SetParticipantCount updates the roster size gauge for an activity.
func SetParticipantCount(activity string, count int) {
	participantsGauge.WithLabelValues(activity).Set(float64(count))
}
