package postgres

import (
	"context"
	"fmt"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

// MatchesByLeague retrieves every match of the given leagues, including any
// committed assignments
func (d *DB) MatchesByLeague(ctx context.Context, leagueIDs []string) ([]model.Match, error) {
	if len(leagueIDs) == 0 {
		return nil, nil
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, league_id, group_id, matchday_id, home_team_id, away_team_id,
		       kickoff, municipality, venue, mds_override,
		       central_id, aa1_id, aa2_id, fourth_id, assessor_id
		FROM matches
		WHERE league_id = ANY($1)
		ORDER BY league_id, kickoff, id
	`, leagueIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []model.Match
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(
			&m.ID, &m.LeagueID, &m.GroupID, &m.MatchdayID, &m.HomeTeamID, &m.AwayTeamID,
			&m.Kickoff, &m.Municipality, &m.Venue, &m.MDSOverride,
			&m.CentralID, &m.AA1ID, &m.AA2ID, &m.FourthID, &m.AssessorID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}

	return matches, nil
}

// MatchdayNumbers maps matchday id to round number for the given leagues
func (d *DB) MatchdayNumbers(ctx context.Context, leagueIDs []string) (map[string]int, error) {
	if len(leagueIDs) == 0 {
		return map[string]int{}, nil
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, number
		FROM matchdays
		WHERE league_id = ANY($1)
	`, leagueIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query matchdays: %w", err)
	}
	defer rows.Close()

	numbers := make(map[string]int)
	for rows.Next() {
		var id string
		var number int
		if err := rows.Scan(&id, &number); err != nil {
			return nil, fmt.Errorf("failed to scan matchday: %w", err)
		}
		numbers[id] = number
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matchdays: %w", err)
	}

	return numbers, nil
}
