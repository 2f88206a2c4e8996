package designator

import (
	"time"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

// Test fixture helpers shared across the engine tests.

func availableRef(id string, rcs float64, roles ...model.Role) model.Referee {
	override := rcs
	return model.Referee{
		ID:           id,
		Name:         "Referee " + id,
		Status:       model.StatusAvailable,
		RolesAllowed: roles,
		RCSOverride:  &override,
	}
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

// mxTime parses a local Mexico City wall-clock time like "2025-03-15T12:00"
func mxTime(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04", value, matchLocation)
	if err != nil {
		panic(err)
	}
	return t
}

func enabledRule(refereeID string, params model.RuleParams) model.InternalRule {
	return model.InternalRule{
		ID:        "rule-" + refereeID + "-" + string(params.Kind()),
		RefereeID: refereeID,
		Enabled:   true,
		Params:    params,
	}
}

// testSnapshot builds the default scenario used by the suggester tests: one
// league, one group, matchday 10, one unassigned match between two tier-5
// teams, three centrals and three assistants.
func testSnapshot() *Snapshot {
	return &Snapshot{
		Leagues: map[string]model.League{
			"L1": {ID: "L1", Name: "Liga Premier", Category: "VARONIL", Slug: "liga-premier"},
		},
		Matches: []model.Match{
			{
				ID:           "M1",
				LeagueID:     "L1",
				GroupID:      "G1",
				MatchdayID:   "J10",
				HomeTeamID:   "TH",
				AwayTeamID:   "TA",
				Kickoff:      mxTime("2025-03-15T12:00"),
				Municipality: "Toluca",
			},
		},
		MatchdayNumbers: map[string]int{"J10": 10},
		Referees: []model.Referee{
			availableRef("C1", 6, model.RoleCentral),
			availableRef("C2", 5, model.RoleCentral),
			availableRef("C3", 4, model.RoleCentral),
			availableRef("A1", 5, model.RoleAA1, model.RoleAA2),
			availableRef("A2", 4, model.RoleAA1, model.RoleAA2),
			availableRef("A3", 3, model.RoleAA1, model.RoleAA2),
		},
		RulesByReferee: map[string][]model.InternalRule{},
		TeamTiers:      map[string]int{"TH": 5, "TA": 5},
	}
}

func keyM1() model.MatchKey {
	return model.MatchKey{LeagueID: "L1", GroupID: "G1", MatchdayID: "J10", MatchID: "M1"}
}
