package designator

import (
	"github.com/arbitrosmx/designador/pkg/core/model"
)

// Snapshot is the immutable read model for one suggestion request. Services
// load it once from the stores; the engine never reaches back to I/O, so
// staleness between snapshot and eventual commit is resolved by the external
// write path.
type Snapshot struct {
	// Leagues referenced by the request, keyed by league ID
	Leagues map[string]model.League

	// Matches holds every match of the referenced leagues, in store order,
	// including existing assignments. Conflict detection scans this set.
	Matches []model.Match

	// MatchdayNumbers maps matchday ID to its round number
	MatchdayNumbers map[string]int

	// Referees visible to the requesting delegation
	Referees []model.Referee

	// RulesByReferee holds the enabled internal rules per referee, in the
	// order the delegation defined them
	RulesByReferee map[string][]model.InternalRule

	// TeamTiers maps team ID to its difficulty tier. Missing entries mean
	// the tier is unknown.
	TeamTiers map[string]int

	// DefaultTolerance, when positive, replaces the built-in tolerance
	// fallback for leagues that configure none
	DefaultTolerance float64

	// RecentTeamWindow, when positive, replaces the built-in recent-team
	// conflict window
	RecentTeamWindow int

	matchIndex map[string]*model.Match
}

// ToleranceFallback returns the tolerance applied to leagues that configure
// none: the snapshot override when set, otherwise the built-in default.
func (s *Snapshot) ToleranceFallback() float64 {
	if s.DefaultTolerance > 0 {
		return s.DefaultTolerance
	}
	return DefaultTolerance
}

// ConflictWindow returns the recent-team window in matchdays: the snapshot
// override when set, otherwise the built-in default.
func (s *Snapshot) ConflictWindow() int {
	if s.RecentTeamWindow > 0 {
		return s.RecentTeamWindow
	}
	return RecentTeamWindow
}

// MatchByID returns the snapshot match with the given ID
func (s *Snapshot) MatchByID(id string) (*model.Match, bool) {
	if s.matchIndex == nil {
		s.matchIndex = make(map[string]*model.Match, len(s.Matches))
		for i := range s.Matches {
			s.matchIndex[s.Matches[i].ID] = &s.Matches[i]
		}
	}
	m, ok := s.matchIndex[id]
	return m, ok
}

// RulesFor returns the enabled rules for one referee. A nil result is a
// valid no-op rule list.
func (s *Snapshot) RulesFor(refereeID string) []model.InternalRule {
	return s.RulesByReferee[refereeID]
}

// Candidate is one referee under consideration for a role
type Candidate struct {
	Referee *model.Referee

	// RCS is the competence score before rule adjustments
	RCS float64

	// Score is the ranking score after internal-rule reweighting
	Score float64
}

// RoleCandidates is the pool split by role eligibility
type RoleCandidates struct {
	Centrals   []Candidate
	Assistants []Candidate
	Assessors  []Candidate
}

// RoleAssignment pairs a referee with the role they would hold, for
// conflict lookups
type RoleAssignment struct {
	RefereeID string
	Role      model.Role
}

// PairKey identifies an unordered referee pair
type PairKey struct {
	A string
	B string
}

// NewPairKey normalizes the pair so that (a,b) and (b,a) collide
func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// BatchState is the usage accumulator folded across a batch. It is the only
// mutable state the batch suggester threads between matches, which is why
// batches must run strictly sequentially.
type BatchState struct {
	UsedIDs   map[string]bool
	UsedPairs map[PairKey]bool
}

// NewBatchState returns an empty accumulator
func NewBatchState() *BatchState {
	return &BatchState{
		UsedIDs:   make(map[string]bool),
		UsedPairs: make(map[PairKey]bool),
	}
}

// IsUsed reports whether a referee was already chosen in this batch
func (st *BatchState) IsUsed(refereeID string) bool {
	if st == nil {
		return false
	}
	return st.UsedIDs[refereeID]
}

// IsPairUsed reports whether the two referees were already paired in this batch
func (st *BatchState) IsPairUsed(a, b string) bool {
	if st == nil {
		return false
	}
	return st.UsedPairs[NewPairKey(a, b)]
}

// Record folds one accepted suggestion into the accumulator: every chosen
// official becomes used, and the central-assistant and assistant-assistant
// pairs become used pairs.
func (st *BatchState) Record(terna model.SuggestedTerna) {
	if st == nil || !terna.HasSuggestion {
		return
	}
	ids := []*string{terna.CentralID, terna.AA1ID, terna.AA2ID, terna.AssessorID}
	for _, id := range ids {
		if id != nil {
			st.UsedIDs[*id] = true
		}
	}
	onField := []*string{terna.CentralID, terna.AA1ID, terna.AA2ID}
	for i := 0; i < len(onField); i++ {
		for j := i + 1; j < len(onField); j++ {
			if onField[i] != nil && onField[j] != nil {
				st.UsedPairs[NewPairKey(*onField[i], *onField[j])] = true
			}
		}
	}
}
