package postgres

import (
	"context"
	"fmt"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

// Referees retrieves the referee pool, restricted to one delegation when
// delegateID is non-empty
func (d *DB) Referees(ctx context.Context, delegateID string) ([]model.Referee, error) {
	query := `
		SELECT id, name, status, roles_allowed, tier, rcs_override, can_assess, category, delegate_id
		FROM referees
		ORDER BY id
	`
	args := []any{}
	if delegateID != "" {
		query = `
			SELECT id, name, status, roles_allowed, tier, rcs_override, can_assess, category, delegate_id
			FROM referees
			WHERE delegate_id = $1 OR delegate_id = ''
			ORDER BY id
		`
		args = append(args, delegateID)
	}

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query referees: %w", err)
	}
	defer rows.Close()

	var referees []model.Referee
	for rows.Next() {
		var r model.Referee
		var roles []string
		if err := rows.Scan(&r.ID, &r.Name, &r.Status, &roles, &r.Tier, &r.RCSOverride, &r.CanAssess, &r.Category, &r.DelegateID); err != nil {
			return nil, fmt.Errorf("failed to scan referee: %w", err)
		}
		r.RolesAllowed = make([]model.Role, 0, len(roles))
		for _, role := range roles {
			r.RolesAllowed = append(r.RolesAllowed, model.Role(role))
		}
		referees = append(referees, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating referees: %w", err)
	}

	return referees, nil
}
