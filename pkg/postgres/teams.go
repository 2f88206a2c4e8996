package postgres

import (
	"context"
	"fmt"
)

// TeamTiers maps team id to its difficulty tier. Teams without a tier are
// omitted so difficulty filtering degrades gracefully for them.
func (d *DB) TeamTiers(ctx context.Context) (map[string]int, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, difficulty_tier
		FROM teams
		WHERE difficulty_tier IS NOT NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query team tiers: %w", err)
	}
	defer rows.Close()

	tiers := make(map[string]int)
	for rows.Next() {
		var id string
		var tier int
		if err := rows.Scan(&id, &tier); err != nil {
			return nil, fmt.Errorf("failed to scan team tier: %w", err)
		}
		tiers[id] = tier
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team tiers: %w", err)
	}

	return tiers, nil
}
