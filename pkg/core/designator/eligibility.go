package designator

import (
	"strings"

	"github.com/elliotchance/pie/v2"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

// BasePool filters the loaded referees down to usable candidates: available
// status (case-normalized), a resolvable competence score, and at least one
// role (or assessor capability). The transform is pure; the snapshot is
// never mutated.
func BasePool(referees []model.Referee) []Candidate {
	pool := make([]Candidate, 0, len(referees))
	for i := range referees {
		ref := &referees[i]
		if !strings.EqualFold(strings.TrimSpace(string(ref.Status)), string(model.StatusAvailable)) {
			continue
		}
		rcs, ok := CompetenceScore(ref)
		if !ok {
			continue
		}
		if len(ref.RolesAllowed) == 0 && !ref.CanAssess {
			continue
		}
		pool = append(pool, Candidate{Referee: ref, RCS: rcs, Score: rcs})
	}
	return pool
}

// SplitRoles partitions the base pool into role-specific candidate sets.
// A referee may appear in several sets; the suggester enforces that no one
// holds two roles on the same match.
func SplitRoles(pool []Candidate) RoleCandidates {
	return RoleCandidates{
		Centrals: pie.Filter(pool, func(c Candidate) bool {
			return c.Referee.HasRole(model.RoleCentral)
		}),
		Assistants: pie.Filter(pool, func(c Candidate) bool {
			return c.Referee.HasRole(model.RoleAA1) || c.Referee.HasRole(model.RoleAA2)
		}),
		Assessors: pie.Filter(pool, func(c Candidate) bool {
			return c.Referee.HasRole(model.RoleAssessor) || c.Referee.CanAssess
		}),
	}
}

// excludeIDs drops candidates whose referee is in the given id set
func excludeIDs(cands []Candidate, ids ...string) []Candidate {
	return pie.Filter(cands, func(c Candidate) bool {
		for _, id := range ids {
			if c.Referee.ID == id {
				return false
			}
		}
		return true
	})
}
