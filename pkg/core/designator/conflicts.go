package designator

import (
	"time"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

// The three detectors are independent, read-only scans over the snapshot's
// match set. Each returns an empty list when no officials are supplied or no
// clash exists; absence of conflicts is the success path.

// ScheduleConflicts flags officials already committed to any other match in
// the same league, across all groups, with an exactly equal kickoff instant.
// Hard block.
func ScheduleConflicts(snap *Snapshot, leagueID, matchID string, kickoff time.Time, officials []RoleAssignment) []model.Conflict {
	conflicts := []model.Conflict{}
	if len(officials) == 0 {
		return conflicts
	}
	for i := range snap.Matches {
		other := &snap.Matches[i]
		if other.LeagueID != leagueID || other.ID == matchID {
			continue
		}
		if !other.Kickoff.Equal(kickoff) {
			continue
		}
		conflicts = append(conflicts, officialsOn(other, officials)...)
	}
	return conflicts
}

// RecentTeamConflicts flags officials who already officiated either team
// within the sliding matchday window [current-window+1, current], inclusive,
// in the same group. Hard block; only the external write path may override.
func RecentTeamConflicts(snap *Snapshot, leagueID, groupID, matchID string, matchdayNumber int, homeTeamID, awayTeamID string, officials []RoleAssignment, window int) []model.Conflict {
	conflicts := []model.Conflict{}
	if len(officials) == 0 || window <= 0 {
		return conflicts
	}
	lowest := matchdayNumber - window + 1
	for i := range snap.Matches {
		other := &snap.Matches[i]
		if other.LeagueID != leagueID || other.GroupID != groupID || other.ID == matchID {
			continue
		}
		number, ok := snap.MatchdayNumbers[other.MatchdayID]
		if !ok || number < lowest || number > matchdayNumber {
			continue
		}
		if other.HomeTeamID != homeTeamID && other.AwayTeamID != homeTeamID &&
			other.HomeTeamID != awayTeamID && other.AwayTeamID != awayTeamID {
			continue
		}
		conflicts = append(conflicts, officialsOn(other, officials)...)
	}
	return conflicts
}

// SameDayConflicts flags officials already committed to another match of the
// league on the same calendar day in the match timezone. The day boundary is
// derived locally and compared in the instant domain, never by UTC
// truncation. Soft block: callers surface it as a diagnostic.
func SameDayConflicts(snap *Snapshot, leagueID, matchID string, kickoff time.Time, officials []RoleAssignment) []model.Conflict {
	conflicts := []model.Conflict{}
	if len(officials) == 0 {
		return conflicts
	}
	dayStart, dayEnd := LocalDayBounds(kickoff)
	for i := range snap.Matches {
		other := &snap.Matches[i]
		if other.LeagueID != leagueID || other.ID == matchID {
			continue
		}
		if other.Kickoff.Before(dayStart) || !other.Kickoff.Before(dayEnd) {
			continue
		}
		conflicts = append(conflicts, officialsOn(other, officials)...)
	}
	return conflicts
}

// officialsOn reports each supplied official that holds any role on the
// other match
func officialsOn(other *model.Match, officials []RoleAssignment) []model.Conflict {
	var found []model.Conflict
	for _, official := range officials {
		if _, assigned := other.OfficialRole(official.RefereeID); !assigned {
			continue
		}
		found = append(found, model.Conflict{
			RefereeID:    official.RefereeID,
			Role:         official.Role,
			OtherMatchID: other.ID,
			OtherKickoff: other.Kickoff,
			OtherHomeID:  other.HomeTeamID,
			OtherAwayID:  other.AwayTeamID,
			OtherVenue:   other.Venue,
		})
	}
	return found
}
