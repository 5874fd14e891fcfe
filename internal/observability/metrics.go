package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Signup attempts, labeled by outcome (ok, activity_not_found, already_registered).",
	}, []string{"outcome"})

	removalsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "removals_total",
		Help:      "Removal attempts, labeled by outcome (ok, activity_not_found, participant_not_found).",
	}, []string{"outcome"})

	rosterSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "roster_size",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activities_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and status code.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(signupsTotal, removalsTotal, rosterSize, requestDuration)
}

// RecordSignup counts a signup attempt by outcome.
func RecordSignup(outcome string) {
	signupsTotal.WithLabelValues(outcome).Inc()
}

// RecordRemoval counts a removal attempt by outcome.
func RecordRemoval(outcome string) {
	removalsTotal.WithLabelValues(outcome).Inc()
}

// SetRosterSize updates the roster gauge for an activity.
func SetRosterSize(activity string, size int) {
	rosterSize.WithLabelValues(activity).Set(float64(size))
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, status string, seconds float64) {
	requestDuration.WithLabelValues(method, status).Observe(seconds)
}
