package designator

import (
	"math"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

// tierScores is the fixed mapping from referee skill tier to competence
// score. Unknown tiers yield no score, which disqualifies the referee from
// the candidate pool unless an explicit override exists.
var tierScores = map[string]float64{
	"NACIONAL": 6,
	"PRIMERA":  5,
	"SEGUNDA":  4,
	"TERCERA":  3,
	"ESTATAL":  2,
	"REGIONAL": 1,
}

// CompetenceScore resolves a referee's RCS: the administrative override wins
// when present, otherwise the tier table applies. ok is false when neither
// yields a score.
func CompetenceScore(r *model.Referee) (float64, bool) {
	if r.RCSOverride != nil {
		v := *r.RCSOverride
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, true
		}
	}
	score, ok := tierScores[r.Tier]
	return score, ok
}

// MatchDifficulty derives the MDS for a match: a stored per-match override
// wins, otherwise the mean of the two teams' difficulty tiers. Nil when
// either tier is unknown, in which case difficulty filtering is skipped.
func MatchDifficulty(m *model.Match, teamTiers map[string]int) *float64 {
	if m.MDSOverride != nil {
		v := *m.MDSOverride
		return &v
	}
	home, okHome := teamTiers[m.HomeTeamID]
	away, okAway := teamTiers[m.AwayTeamID]
	if !okHome || !okAway {
		return nil
	}
	mds := (float64(home) + float64(away)) / 2
	return &mds
}

// ToleranceOrDefault sanitizes a league-configured tolerance. Nil, NaN, or
// negative values fall back to the given default.
func ToleranceOrDefault(v *float64, fallback float64) float64 {
	if v == nil || math.IsNaN(*v) || *v < 0 {
		return fallback
	}
	return *v
}

// FilterByCompetence keeps candidates whose RCS is at least mds - tolerance.
// A nil mds disables filtering. When the filter would empty the set, the
// unfiltered set is returned instead: a tier mismatch alone must never
// exhaust the pool.
func FilterByCompetence(cands []Candidate, mds *float64, tolerance float64) []Candidate {
	if mds == nil {
		return cands
	}
	threshold := *mds - tolerance
	kept := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.RCS >= threshold {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return cands
	}
	return kept
}
