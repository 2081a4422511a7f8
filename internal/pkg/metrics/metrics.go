package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeAcquired    = "acquired"
	OutcomeReacquired  = "reacquired"
	OutcomeLocked      = "locked"
	OutcomeFullyBooked = "fully_booked"
	OutcomeError       = "error"

	SweepClaimed = "claimed"
	SweepSkipped = "skipped"
	SweepFailed  = "failed"
)

// Metrics owns a private registry so tests can build independent instances.
// A nil *Metrics records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	lockAttempts *prometheus.CounterVec
	transitions  *prometheus.CounterVec
	sweepRuns    *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lockAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_slot_lock_attempts_total",
			Help: "Slot lock acquisition attempts by outcome.",
		}, []string{"outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_appointment_transitions_total",
			Help: "Appointment status transitions by target status.",
		}, []string{"to"}),
		sweepRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_sweep_runs_total",
			Help: "Background sweep invocations by sweep and outcome.",
		}, []string{"sweep", "outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(
		m.lockAttempts,
		m.transitions,
		m.sweepRuns,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) LockAttempt(outcome string) {
	if m == nil {
		return
	}
	m.lockAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Transition(to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(to).Inc()
}

func (m *Metrics) SweepRun(sweep, outcome string) {
	if m == nil {
		return
	}
	m.sweepRuns.WithLabelValues(sweep, outcome).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
