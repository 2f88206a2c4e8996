package designator

import (
	"github.com/arbitrosmx/designador/pkg/core/model"
)

// SuggestMatch runs the full suggestion pipeline for one match. The pipeline
// is a strict ordered sequence of early-return terminal reasons; once a trio
// is chosen and a hard conflict is found, the match is reported blocked with
// no backtracking to an alternative trio.
//
// st carries batch usage state; pass nil for a standalone single-match
// suggestion.
func SuggestMatch(snap *Snapshot, key model.MatchKey, st *BatchState) model.SuggestedTerna {
	out := model.SuggestedTerna{Key: key}

	league, ok := snap.Leagues[key.LeagueID]
	if !ok {
		return terminal(out, model.ReasonLeagueNotFound)
	}

	match, ok := snap.MatchByID(key.MatchID)
	if !ok || match.LeagueID != key.LeagueID || match.GroupID != key.GroupID || match.MatchdayID != key.MatchdayID {
		return terminal(out, model.ReasonMatchNotFound)
	}

	out.CentralTolerance = ToleranceOrDefault(league.CentralTolerance, snap.ToleranceFallback())
	out.AssistantsTolerance = ToleranceOrDefault(league.AssistantsTolerance, snap.ToleranceFallback())

	pool := BasePool(snap.Referees)
	if len(pool) == 0 {
		return terminal(out, model.ReasonNoAvailableReferees)
	}

	roles := SplitRoles(pool)
	if len(roles.Centrals) == 0 || len(roles.Assistants) == 0 {
		return terminal(out, model.ReasonNoRoleCandidates)
	}

	mds := MatchDifficulty(match, snap.TeamTiers)
	out.MDS = mds
	weekday := WeekdayLetter(match.Kickoff)

	// Central selection: difficulty filter first, then the per-referee
	// rules engine (vetoes and reweighting), then league-priority ranking.
	centrals := FilterByCompetence(roles.Centrals, mds, out.CentralTolerance)
	centrals = applyRules(snap, league.ID, match, weekday, centrals, nil)
	if len(centrals) == 0 {
		return terminal(out, model.ReasonNoCentralAfterMDSFilter)
	}
	SortWithLeaguePriority(centrals, league)
	central, _ := pickFirstNotUsed(centrals, st)
	centralID := central.Referee.ID
	out.CentralID = &centralID
	out.CentralRCS = &central.RCS

	// First assistant: excludes the central, same filters.
	assistPool := FilterByCompetence(excludeIDs(roles.Assistants, centralID), mds, out.AssistantsTolerance)
	aa1Cands := applyRules(snap, league.ID, match, weekday, assistPool, []string{centralID})
	if len(aa1Cands) == 0 {
		return terminal(out, model.ReasonNotEnoughAssistants)
	}
	SortWithLeaguePriority(aa1Cands, league)
	aa1, _ := pickAssistantAvoidingPairs(aa1Cands, st, centralID)
	aa1ID := aa1.Referee.ID
	out.AA1ID = &aa1ID

	// Second assistant: once the first assistant is fixed, its obligatory
	// companion set becomes a required-membership filter on the AA2 pool.
	aa2Pool := excludeIDs(assistPool, aa1ID)
	required := ObligatoryCompanions(snap.RulesFor(aa1ID))
	inUnit := len(required) > 0
	if inUnit {
		aa2Pool = keepIDs(aa2Pool, required)
	}
	aa2Cands := applyRules(snap, league.ID, match, weekday, aa2Pool, []string{centralID, aa1ID})
	if len(aa2Cands) == 0 {
		if inUnit {
			return terminal(out, model.ReasonNotEnoughAssistantsInUnit)
		}
		return terminal(out, model.ReasonNotEnoughAssistants)
	}
	SortWithLeaguePriority(aa2Cands, league)
	aa2, _ := pickAssistantAvoidingPairs(aa2Cands, st, centralID, aa1ID)
	aa2ID := aa2.Referee.ID
	out.AA2ID = &aa2ID

	trio := []RoleAssignment{
		{RefereeID: centralID, Role: model.RoleCentral},
		{RefereeID: aa1ID, Role: model.RoleAA1},
		{RefereeID: aa2ID, Role: model.RoleAA2},
	}

	out.ScheduleConflicts = ScheduleConflicts(snap, league.ID, match.ID, match.Kickoff, trio)
	if len(out.ScheduleConflicts) > 0 {
		return terminal(out, model.ReasonBlockedBySchedule)
	}

	matchdayNumber := snap.MatchdayNumbers[key.MatchdayID]
	out.RecentTeamConflicts = RecentTeamConflicts(snap, league.ID, match.GroupID, match.ID, matchdayNumber,
		match.HomeTeamID, match.AwayTeamID, trio, snap.ConflictWindow())
	if len(out.RecentTeamConflicts) > 0 {
		return terminal(out, model.ReasonBlockedByRecentTeam)
	}

	// Assessor is optional: TDP leagues only, and only when an eligible
	// non-duplicate candidate remains. Its absence never fails the match.
	officials := trio
	if ShouldAssignAssessor(league) {
		assessorCands := excludeIDs(roles.Assessors, centralID, aa1ID, aa2ID)
		assessorCands = applyRules(snap, league.ID, match, weekday, assessorCands, []string{centralID, aa1ID, aa2ID})
		if len(assessorCands) > 0 {
			SortWithLeaguePriority(assessorCands, league)
			assessor, _ := pickFirstNotUsed(assessorCands, st)
			assessorID := assessor.Referee.ID
			out.AssessorID = &assessorID
			officials = append(trio, RoleAssignment{RefereeID: assessorID, Role: model.RoleAssessor})
		}
	}

	// Same-day double-booking is informational only; it never withdraws
	// the suggestion.
	out.SameDayConflicts = SameDayConflicts(snap, league.ID, match.ID, match.Kickoff, officials)

	out.HasSuggestion = true
	out.Reason = model.ReasonOK
	return out
}

// applyRules evaluates each candidate's internal rules against the match
// context, dropping vetoed candidates and carrying the reweighted score into
// ranking
func applyRules(snap *Snapshot, leagueID string, match *model.Match, weekday model.Weekday, cands []Candidate, companions []string) []Candidate {
	rctx := RuleContext{
		LeagueID:     leagueID,
		Municipality: match.Municipality,
		Weekday:      weekday,
		HomeTeamID:   match.HomeTeamID,
		AwayTeamID:   match.AwayTeamID,
		Companions:   companions,
	}
	kept := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		outcome := EvaluateRules(snap.RulesFor(c.Referee.ID), rctx, c.RCS)
		if !outcome.Allowed {
			continue
		}
		c.Score = outcome.Score
		kept = append(kept, c)
	}
	return kept
}

// keepIDs keeps only candidates whose referee id is in the required set
func keepIDs(cands []Candidate, ids []string) []Candidate {
	kept := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if contains(ids, c.Referee.ID) {
			kept = append(kept, c)
		}
	}
	return kept
}

func terminal(out model.SuggestedTerna, reason model.Reason) model.SuggestedTerna {
	out.HasSuggestion = false
	out.Reason = reason
	return out
}
