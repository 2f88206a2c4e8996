package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SuggestionMetrics records the outcomes of designation runs.
type SuggestionMetrics interface {
	AddSuggestionOutcome(leagueID string, reason string)
	AddConflict(leagueID string, conflictType string)
	AddSuggestElapsedTimeMs(leagueID string, operation string, elapsedTime time.Duration)
}

func NewMetrics(registry *prometheus.Registry) SuggestionMetrics {
	return setupPrometheusMetrics(registry)
}

// Nop returns a no-op recorder for callers that run without a registry,
// such as tests and one-shot CLI invocations.
func Nop() SuggestionMetrics {
	return nopMetrics{}
}

type nopMetrics struct{}

func (nopMetrics) AddSuggestionOutcome(string, string) {}

func (nopMetrics) AddConflict(string, string) {}

func (nopMetrics) AddSuggestElapsedTimeMs(string, string, time.Duration) {}
