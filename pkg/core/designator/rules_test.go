package designator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

func baseRuleContext() RuleContext {
	return RuleContext{
		LeagueID:     "L1",
		Municipality: "Toluca",
		Weekday:      model.WeekdaySaturday,
		HomeTeamID:   "TH",
		AwayTeamID:   "TA",
	}
}

func TestEvaluateRules_EmptyListIsNoOp(t *testing.T) {
	outcome := EvaluateRules(nil, baseRuleContext(), 5)

	assert.True(t, outcome.Allowed)
	assert.Equal(t, 5.0, outcome.Score)
}

// A referee with only disabled rules must score identically to one with no
// rules at all.
func TestEvaluateRules_DisabledRulesMatchEmptyList(t *testing.T) {
	disabled := []model.InternalRule{
		{
			RefereeID: "R1",
			Enabled:   false,
			Params:    &model.ForbiddenTeamsParams{TeamIDs: []string{"TH"}},
		},
		{
			RefereeID: "R1",
			Enabled:   false,
			Params:    &model.PreferredMunicipalitiesParams{Municipalities: []string{"Toluca"}, PesoExtra: 3},
		},
	}

	withDisabled := EvaluateRules(disabled, baseRuleContext(), 5)
	withNone := EvaluateRules(nil, baseRuleContext(), 5)

	assert.Equal(t, withNone, withDisabled)
}

func TestEvaluateRules_ForbiddenMunicipality(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.ForbiddenMunicipalitiesParams{Municipalities: []string{"toluca"}}),
	}

	outcome := EvaluateRules(rules, baseRuleContext(), 5)

	assert.False(t, outcome.Allowed)
	assert.Equal(t, 0.0, outcome.Score)
	assert.Equal(t, model.RuleForbiddenMunicipalities, outcome.Veto)
}

func TestEvaluateRules_ForbiddenDay(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.ForbiddenDaysParams{Days: []model.Weekday{model.WeekdaySaturday, model.WeekdaySunday}}),
	}

	outcome := EvaluateRules(rules, baseRuleContext(), 5)

	assert.False(t, outcome.Allowed)
}

func TestEvaluateRules_ForbiddenTeamMatchesEitherSide(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.ForbiddenTeamsParams{TeamIDs: []string{"TA"}}),
	}

	outcome := EvaluateRules(rules, baseRuleContext(), 5)

	assert.False(t, outcome.Allowed)
	assert.Equal(t, model.RuleForbiddenTeams, outcome.Veto)
}

func TestEvaluateRules_ForbiddenLeague(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.ForbiddenLeaguesParams{LeagueIDs: []string{"L1"}}),
	}

	outcome := EvaluateRules(rules, baseRuleContext(), 5)

	assert.False(t, outcome.Allowed)
}

// Prohibitions dominate preferences regardless of where they sit in the
// rule list.
func TestEvaluateRules_ProhibitionDominatesEarlierPreference(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.PreferredMunicipalitiesParams{Municipalities: []string{"Toluca"}, PesoExtra: 3}),
		enabledRule("R1", &model.ForbiddenTeamsParams{TeamIDs: []string{"TH"}}),
	}

	outcome := EvaluateRules(rules, baseRuleContext(), 5)

	assert.False(t, outcome.Allowed)
	assert.Equal(t, 0.0, outcome.Score)
}

func TestEvaluateRules_PreferredMunicipalityMultiplies(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.PreferredMunicipalitiesParams{Municipalities: []string{"Toluca"}, PesoExtra: 2}),
	}

	outcome := EvaluateRules(rules, baseRuleContext(), 5)

	assert.True(t, outcome.Allowed)
	assert.Equal(t, 10.0, outcome.Score)
}

func TestEvaluateRules_PreferredDayAddsFixedBonus(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.PreferredDaysParams{Days: []model.Weekday{model.WeekdaySaturday}}),
	}

	outcome := EvaluateRules(rules, baseRuleContext(), 5)

	assert.Equal(t, 5.0+PreferredDayBonus, outcome.Score)
}

func TestEvaluateRules_PreferredTeamMultiplies(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.PreferredTeamsParams{TeamIDs: []string{"TH"}, PesoExtra: 1.5}),
	}

	outcome := EvaluateRules(rules, baseRuleContext(), 4)

	assert.Equal(t, 6.0, outcome.Score)
}

func TestEvaluateRules_CompanionBoostWhenPresent(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.PreferredCompanionsParams{CompanionIDs: []string{"A1"}, PesoExtra: 2}),
	}
	rctx := baseRuleContext()
	rctx.Companions = []string{"C1", "A1"}

	outcome := EvaluateRules(rules, rctx, 4)

	assert.Equal(t, 8.0, outcome.Score)
}

func TestEvaluateRules_CompanionPenaltyWhenAbsent(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.PreferredCompanionsParams{CompanionIDs: []string{"A9"}, PesoExtra: 2}),
	}
	rctx := baseRuleContext()
	rctx.Companions = []string{"C1"}

	outcome := EvaluateRules(rules, rctx, 4)

	assert.Equal(t, 2.0, outcome.Score)
}

func TestEvaluateRules_NonPositivePesoIsNeutral(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.PreferredTeamsParams{TeamIDs: []string{"TH"}, PesoExtra: 0}),
	}

	outcome := EvaluateRules(rules, baseRuleContext(), 4)

	assert.Equal(t, 4.0, outcome.Score)
}

// Obligatory companions are not resolved per candidate; the evaluator must
// leave the score and allowance untouched.
func TestEvaluateRules_ObligatoryCompanionsAreNotScored(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.ObligatoryCompanionsParams{CompanionIDs: []string{"A1"}}),
	}

	outcome := EvaluateRules(rules, baseRuleContext(), 4)

	assert.True(t, outcome.Allowed)
	assert.Equal(t, 4.0, outcome.Score)
}

func TestObligatoryCompanions_UnionOfEnabledRules(t *testing.T) {
	rules := []model.InternalRule{
		enabledRule("R1", &model.ObligatoryCompanionsParams{CompanionIDs: []string{"A1", "A2"}}),
		enabledRule("R1", &model.ObligatoryCompanionsParams{CompanionIDs: []string{"A2", "A3"}}),
		{
			RefereeID: "R1",
			Enabled:   false,
			Params:    &model.ObligatoryCompanionsParams{CompanionIDs: []string{"A9"}},
		},
	}

	required := ObligatoryCompanions(rules)

	assert.Equal(t, []string{"A1", "A2", "A3"}, required)
}

func TestObligatoryCompanions_EmptyWithoutRules(t *testing.T) {
	assert.Empty(t, ObligatoryCompanions(nil))
}
