package postgres

import (
	"context"
	"fmt"

	"github.com/arbitrosmx/designador/pkg/core/model"
	"github.com/arbitrosmx/designador/pkg/db"
)

// InsertCalendar writes a generated calendar atomically: all matchdays first,
// then their placeholder fixtures. If anything fails nothing is committed.
func (d *DB) InsertCalendar(ctx context.Context, entries []db.CalendarEntry, matches []model.Match) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin calendar transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, entry := range entries {
		_, err := tx.Exec(ctx, `
			INSERT INTO matchdays (id, league_id, group_id, number, date)
			VALUES ($1, $2, $3, $4, $5)
		`, entry.MatchdayID, entry.LeagueID, entry.GroupID, entry.Number, entry.Date)
		if err != nil {
			return fmt.Errorf("failed to insert matchday %s: %w", entry.MatchdayID, err)
		}
	}

	for _, match := range matches {
		_, err := tx.Exec(ctx, `
			INSERT INTO matches (id, league_id, group_id, matchday_id, home_team_id, away_team_id, kickoff, municipality, venue)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, match.ID, match.LeagueID, match.GroupID, match.MatchdayID, match.HomeTeamID, match.AwayTeamID, match.Kickoff, match.Municipality, match.Venue)
		if err != nil {
			return fmt.Errorf("failed to insert match %s: %w", match.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit calendar transaction: %w", err)
	}

	return nil
}
