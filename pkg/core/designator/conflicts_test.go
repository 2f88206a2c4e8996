package designator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

func trioOf(ids ...string) []RoleAssignment {
	roles := []model.Role{model.RoleCentral, model.RoleAA1, model.RoleAA2}
	trio := make([]RoleAssignment, len(ids))
	for i, id := range ids {
		trio[i] = RoleAssignment{RefereeID: id, Role: roles[i]}
	}
	return trio
}

func TestScheduleConflicts_ExactKickoffClash(t *testing.T) {
	snap := &Snapshot{
		Matches: []model.Match{
			{ID: "M1", LeagueID: "L1", GroupID: "G1", Kickoff: mxTime("2025-03-15T12:00")},
			// Same league, different group, identical instant, C1 committed
			{ID: "M2", LeagueID: "L1", GroupID: "G2", Kickoff: mxTime("2025-03-15T12:00"), CentralID: strPtr("C1"), Venue: "Estadio Norte"},
		},
	}

	conflicts := ScheduleConflicts(snap, "L1", "M1", mxTime("2025-03-15T12:00"), trioOf("C1", "A1", "A2"))

	require.Len(t, conflicts, 1)
	assert.Equal(t, "C1", conflicts[0].RefereeID)
	assert.Equal(t, model.RoleCentral, conflicts[0].Role)
	assert.Equal(t, "M2", conflicts[0].OtherMatchID)
	assert.Equal(t, "Estadio Norte", conflicts[0].OtherVenue)
}

func TestScheduleConflicts_DifferentInstantIsClean(t *testing.T) {
	snap := &Snapshot{
		Matches: []model.Match{
			{ID: "M2", LeagueID: "L1", Kickoff: mxTime("2025-03-15T14:00"), CentralID: strPtr("C1")},
		},
	}

	conflicts := ScheduleConflicts(snap, "L1", "M1", mxTime("2025-03-15T12:00"), trioOf("C1", "A1", "A2"))

	assert.Empty(t, conflicts)
}

func TestScheduleConflicts_OtherLeagueIgnored(t *testing.T) {
	snap := &Snapshot{
		Matches: []model.Match{
			{ID: "M2", LeagueID: "L2", Kickoff: mxTime("2025-03-15T12:00"), CentralID: strPtr("C1")},
		},
	}

	conflicts := ScheduleConflicts(snap, "L1", "M1", mxTime("2025-03-15T12:00"), trioOf("C1", "A1", "A2"))

	assert.Empty(t, conflicts)
}

func TestScheduleConflicts_EmptyTrio(t *testing.T) {
	snap := &Snapshot{
		Matches: []model.Match{
			{ID: "M2", LeagueID: "L1", Kickoff: mxTime("2025-03-15T12:00"), CentralID: strPtr("C1")},
		},
	}

	assert.Empty(t, ScheduleConflicts(snap, "L1", "M1", mxTime("2025-03-15T12:00"), nil))
}

func recentTeamSnapshot() *Snapshot {
	return &Snapshot{
		MatchdayNumbers: map[string]int{"J6": 6, "J7": 7, "J9": 9, "J10": 10},
		Matches: []model.Match{
			// Matchday 7: C1 officiated the home team, inside the window
			{ID: "M7", LeagueID: "L1", GroupID: "G1", MatchdayID: "J7", HomeTeamID: "TH", AwayTeamID: "TX", Kickoff: mxTime("2025-02-22T12:00"), AA1ID: strPtr("C1")},
			// Matchday 6: outside the window for matchday 10
			{ID: "M6", LeagueID: "L1", GroupID: "G1", MatchdayID: "J6", HomeTeamID: "TH", AwayTeamID: "TY", Kickoff: mxTime("2025-02-15T12:00"), CentralID: strPtr("A1")},
			// Matchday 9, other group: out of scope
			{ID: "M9", LeagueID: "L1", GroupID: "G2", MatchdayID: "J9", HomeTeamID: "TA", AwayTeamID: "TZ", Kickoff: mxTime("2025-03-08T12:00"), CentralID: strPtr("A2")},
			// Matchday 9, same group but unrelated teams
			{ID: "M9b", LeagueID: "L1", GroupID: "G1", MatchdayID: "J9", HomeTeamID: "TX", AwayTeamID: "TY", Kickoff: mxTime("2025-03-08T16:00"), CentralID: strPtr("A1")},
		},
	}
}

func TestRecentTeamConflicts_WindowIsInclusive(t *testing.T) {
	snap := recentTeamSnapshot()

	conflicts := RecentTeamConflicts(snap, "L1", "G1", "M10", 10, "TH", "TA", trioOf("C1", "A1", "A2"), RecentTeamWindow)

	// Window 4 at matchday 10 scans matchdays 7 through 10: only the
	// matchday-7 exposure of C1 counts.
	require.Len(t, conflicts, 1)
	assert.Equal(t, "C1", conflicts[0].RefereeID)
	assert.Equal(t, "M7", conflicts[0].OtherMatchID)
}

func TestRecentTeamConflicts_BelowWindowIsClean(t *testing.T) {
	snap := recentTeamSnapshot()

	// At matchday 13 the window is 10..13; the matchday-7 match drops out.
	conflicts := RecentTeamConflicts(snap, "L1", "G1", "M13", 13, "TH", "TA", trioOf("C1", "A1", "A2"), RecentTeamWindow)

	assert.Empty(t, conflicts)
}

func TestRecentTeamConflicts_EmptyTrio(t *testing.T) {
	assert.Empty(t, RecentTeamConflicts(recentTeamSnapshot(), "L1", "G1", "M10", 10, "TH", "TA", nil, RecentTeamWindow))
}

func TestRecentTeamConflicts_CurrentMatchExcluded(t *testing.T) {
	snap := recentTeamSnapshot()
	// The match being suggested already carries a committed official; its own
	// record must not count as a prior exposure.
	snap.Matches = append(snap.Matches, model.Match{
		ID: "M10", LeagueID: "L1", GroupID: "G1", MatchdayID: "J10",
		HomeTeamID: "TH", AwayTeamID: "TA", Kickoff: mxTime("2025-03-15T12:00"),
		FourthID: strPtr("A2"),
	})

	conflicts := RecentTeamConflicts(snap, "L1", "G1", "M10", 10, "TH", "TA", trioOf("C1", "A1", "A2"), RecentTeamWindow)

	require.Len(t, conflicts, 1)
	assert.Equal(t, "C1", conflicts[0].RefereeID)
	assert.Equal(t, "M7", conflicts[0].OtherMatchID)
}

func TestSameDayConflicts_AcrossMidnight(t *testing.T) {
	snap := &Snapshot{
		Matches: []model.Match{
			{ID: "M1", LeagueID: "L1", Kickoff: mxTime("2025-03-15T23:30")},
			{ID: "M2", LeagueID: "L1", Kickoff: mxTime("2025-03-16T00:30"), AssessorID: strPtr("S1")},
			{ID: "M3", LeagueID: "L1", Kickoff: mxTime("2025-03-16T01:00"), CentralID: strPtr("S1")},
		},
	}
	officials := []RoleAssignment{{RefereeID: "S1", Role: model.RoleAssessor}}

	conflicts := SameDayConflicts(snap, "L1", "M1", mxTime("2025-03-15T23:30"), officials)

	// The 00:30 fixture shares the match day; the 01:00 fixture belongs
	// to the next one.
	require.Len(t, conflicts, 1)
	assert.Equal(t, "M2", conflicts[0].OtherMatchID)
}

func TestSameDayConflicts_ChecksAllFiveRoles(t *testing.T) {
	snap := &Snapshot{
		Matches: []model.Match{
			{ID: "M2", LeagueID: "L1", Kickoff: mxTime("2025-03-15T10:00"), FourthID: strPtr("Q1")},
		},
	}
	officials := []RoleAssignment{
		{RefereeID: "Q1", Role: model.RoleFourth},
		{RefereeID: "Q2", Role: model.RoleAssessor},
	}

	conflicts := SameDayConflicts(snap, "L1", "M1", mxTime("2025-03-15T18:00"), officials)

	require.Len(t, conflicts, 1)
	assert.Equal(t, "Q1", conflicts[0].RefereeID)
	assert.Equal(t, model.RoleFourth, conflicts[0].Role)
}
