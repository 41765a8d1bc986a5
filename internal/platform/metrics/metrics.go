package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the application.
type Metrics struct {
	StageTransitions *prometheus.CounterVec
	RejectedAdvances *prometheus.CounterVec
	MatchesCreated   *prometheus.CounterVec
	MessagesAppended *prometheus.CounterVec
	CurrentStageRank prometheus.Gauge
	EndpointLatency  *prometheus.HistogramVec
}

// New creates and registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		StageTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "matchmaker_stage_transitions_total",
			Help: "Onboarding stage transitions by target stage",
		}, []string{"to"}),
		RejectedAdvances: f.NewCounterVec(prometheus.CounterOpts{
			Name: "matchmaker_rejected_advances_total",
			Help: "Advance attempts refused, by reason",
		}, []string{"reason"}),
		MatchesCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "matchmaker_matches_created_total",
			Help: "Matches created, by source (demo, discover)",
		}, []string{"source"}),
		MessagesAppended: f.NewCounterVec(prometheus.CounterOpts{
			Name: "matchmaker_messages_appended_total",
			Help: "Chat messages appended, by thread (match, matchmaker)",
		}, []string{"thread"}),
		CurrentStageRank: f.NewGauge(prometheus.GaugeOpts{
			Name: "matchmaker_onboarding_stage_rank",
			Help: "Position of the current onboarding stage (0 = intro, 5 = authed)",
		}),
		EndpointLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "matchmaker_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method"}),
	}
}

// IncrementStageTransition records a successful transition and the new stage rank.
func (m *Metrics) IncrementStageTransition(to string, rank int) {
	m.StageTransitions.WithLabelValues(to).Inc()
	m.CurrentStageRank.Set(float64(rank))
}

// IncrementRejectedAdvance records a refused advance attempt.
func (m *Metrics) IncrementRejectedAdvance(reason string) {
	m.RejectedAdvances.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementMatchCreated(source string) {
	m.MatchesCreated.WithLabelValues(source).Inc()
}

func (m *Metrics) IncrementMessageAppended(thread string) {
	m.MessagesAppended.WithLabelValues(thread).Inc()
}

// ObserveRequest records the duration of a request.
// Call with time.Now() taken at the start of the request.
func (m *Metrics) ObserveRequest(route, method string, start time.Time) {
	m.EndpointLatency.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
}
