package designator

import (
	"strings"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

// RuleContext is the slice of a match the internal-rules engine evaluates a
// referee against
type RuleContext struct {
	LeagueID     string
	Municipality string
	Weekday      model.Weekday
	HomeTeamID   string
	AwayTeamID   string

	// Companions are the referees already fixed in the trio being built
	Companions []string
}

// RuleOutcome is the result of evaluating one referee's rule list
type RuleOutcome struct {
	Allowed bool
	Score   float64

	// Veto names the rule kind that blocked the referee, when not allowed
	Veto model.RuleKind
}

// EvaluateRules applies a referee's enabled rules to a match context and a
// running score. Rules run in list order, but any matching prohibition
// short-circuits with a veto: prohibitions always dominate preferences, no
// matter where they sit in the list. An empty rule list is a no-op, which
// keeps referees without custom rules on the legacy scoring path.
func EvaluateRules(rules []model.InternalRule, rctx RuleContext, score float64) RuleOutcome {
	for _, rule := range rules {
		if !rule.Enabled || rule.Params == nil {
			continue
		}

		switch params := rule.Params.(type) {
		case *model.ForbiddenMunicipalitiesParams:
			if containsFold(params.Municipalities, rctx.Municipality) {
				return RuleOutcome{Allowed: false, Score: 0, Veto: rule.Kind()}
			}
		case *model.ForbiddenDaysParams:
			if containsWeekday(params.Days, rctx.Weekday) {
				return RuleOutcome{Allowed: false, Score: 0, Veto: rule.Kind()}
			}
		case *model.ForbiddenTeamsParams:
			if contains(params.TeamIDs, rctx.HomeTeamID) || contains(params.TeamIDs, rctx.AwayTeamID) {
				return RuleOutcome{Allowed: false, Score: 0, Veto: rule.Kind()}
			}
		case *model.ForbiddenLeaguesParams:
			if contains(params.LeagueIDs, rctx.LeagueID) {
				return RuleOutcome{Allowed: false, Score: 0, Veto: rule.Kind()}
			}

		case *model.PreferredMunicipalitiesParams:
			if containsFold(params.Municipalities, rctx.Municipality) {
				score *= pesoOrNeutral(params.PesoExtra)
			}
		case *model.PreferredDaysParams:
			if containsWeekday(params.Days, rctx.Weekday) {
				score += PreferredDayBonus
			}
		case *model.PreferredTeamsParams:
			if contains(params.TeamIDs, rctx.HomeTeamID) || contains(params.TeamIDs, rctx.AwayTeamID) {
				score *= pesoOrNeutral(params.PesoExtra)
			}
		case *model.PreferredCompanionsParams:
			peso := pesoOrNeutral(params.PesoExtra)
			if anyCompanionPresent(params.CompanionIDs, rctx.Companions) {
				score *= peso
			} else {
				score /= peso
			}

		case *model.ObligatoryCompanionsParams:
			// Not resolved per candidate: once a first assistant is
			// fixed, its obligatory set filters the AA2 pool instead.
			// See ObligatoryCompanions.
		}
	}

	return RuleOutcome{Allowed: true, Score: score}
}

// ObligatoryCompanions returns the union of a referee's enabled obligatory
// companion sets. A non-empty result turns into a required-membership filter
// on the second-assistant pool.
func ObligatoryCompanions(rules []model.InternalRule) []string {
	var required []string
	seen := make(map[string]bool)
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		params, ok := rule.Params.(*model.ObligatoryCompanionsParams)
		if !ok {
			continue
		}
		for _, id := range params.CompanionIDs {
			if !seen[id] {
				seen[id] = true
				required = append(required, id)
			}
		}
	}
	return required
}

// pesoOrNeutral sanitizes a preference weight; non-positive values are
// treated as neutral so a misconfigured rule cannot zero out or flip a score
func pesoOrNeutral(peso float64) float64 {
	if peso <= 0 {
		return NeutralPesoExtra
	}
	return peso
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func containsFold(list []string, value string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(value)) {
			return true
		}
	}
	return false
}

func containsWeekday(days []model.Weekday, day model.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func anyCompanionPresent(preferred, companions []string) bool {
	for _, p := range preferred {
		if contains(companions, p) {
			return true
		}
	}
	return false
}
