package postgres

import (
	"context"
	"fmt"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

// Leagues retrieves the leagues found among the given ids
func (d *DB) Leagues(ctx context.Context, ids []string) ([]model.League, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, name, category, slug, central_tolerance, assistants_tolerance
		FROM leagues
		WHERE id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query leagues: %w", err)
	}
	defer rows.Close()

	var leagues []model.League
	for rows.Next() {
		var l model.League
		if err := rows.Scan(&l.ID, &l.Name, &l.Category, &l.Slug, &l.CentralTolerance, &l.AssistantsTolerance); err != nil {
			return nil, fmt.Errorf("failed to scan league: %w", err)
		}
		leagues = append(leagues, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leagues: %w", err)
	}

	return leagues, nil
}
