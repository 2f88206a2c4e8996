package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	suggestionOutcomes prometheus.CounterVec
	conflicts          prometheus.CounterVec
	suggestElapsedTime prometheus.HistogramVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	suggestionOutcomes := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "designador_suggestion_outcomes_total",
			Help: "Count of terna suggestion outcomes by reason code",
		}, []string{"league", "reason"})

	conflicts := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "designador_conflicts_total",
			Help: "Count of detected assignment conflicts by type",
		}, []string{"league", "type"})

	//nolint:promlinter
	suggestElapsedTime := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "designador_suggest_elapsed_time_ms",
			Help:    "A histogram of suggestion operation elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"league", "operation"})

	return prometheusMetrics{
		suggestionOutcomes: *suggestionOutcomes,
		conflicts:          *conflicts,
		suggestElapsedTime: *suggestElapsedTime,
	}
}

func (metrics prometheusMetrics) AddSuggestionOutcome(leagueID string, reason string) {
	metrics.suggestionOutcomes.With(prometheus.Labels{"league": leagueID, "reason": reason}).Add(1)
}

func (metrics prometheusMetrics) AddConflict(leagueID string, conflictType string) {
	metrics.conflicts.With(prometheus.Labels{"league": leagueID, "type": conflictType}).Add(1)
}

func (metrics prometheusMetrics) AddSuggestElapsedTimeMs(leagueID string, operation string, elapsedTime time.Duration) {
	metrics.suggestElapsedTime.With(prometheus.Labels{"league": leagueID, "operation": operation}).Observe(float64(elapsedTime.Milliseconds()))
}
