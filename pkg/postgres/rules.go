package postgres

import (
	"context"
	"fmt"

	"github.com/arbitrosmx/designador/pkg/core/model"
	"github.com/arbitrosmx/designador/pkg/db"
)

// EnabledRulesByReferee loads the enabled internal rules for the given
// referees, grouped by referee and ordered by their stored position so the
// evaluation order matches what the delegate configured.
func (d *DB) EnabledRulesByReferee(ctx context.Context, refereeIDs []string) (map[string][]model.InternalRule, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, referee_id, kind, params, enabled, updated_by, updated_at, reason, position
		FROM internal_rules
		WHERE referee_id = ANY($1) AND enabled
		ORDER BY referee_id, position
	`, refereeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query internal rules: %w", err)
	}
	defer rows.Close()

	rules := make(map[string][]model.InternalRule)
	for rows.Next() {
		var row db.InternalRuleRow
		if err := rows.Scan(&row.ID, &row.RefereeID, &row.Kind, &row.Params, &row.Enabled,
			&row.UpdatedBy, &row.UpdatedAt, &row.Reason, &row.Position); err != nil {
			return nil, fmt.Errorf("failed to scan internal rule: %w", err)
		}

		rule, err := ruleFromRow(row)
		if err != nil {
			return nil, err
		}
		rules[rule.RefereeID] = append(rules[rule.RefereeID], rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating internal rules: %w", err)
	}

	return rules, nil
}

// ruleFromRow decodes the stored params document into the typed rule model.
func ruleFromRow(row db.InternalRuleRow) (model.InternalRule, error) {
	params, err := model.DecodeRuleParams(model.RuleKind(row.Kind), row.Params)
	if err != nil {
		return model.InternalRule{}, fmt.Errorf("failed to decode params for rule %s: %w", row.ID, err)
	}
	return model.InternalRule{
		ID:        row.ID,
		RefereeID: row.RefereeID,
		Enabled:   row.Enabled,
		UpdatedBy: row.UpdatedBy,
		UpdatedAt: row.UpdatedAt,
		Reason:    row.Reason,
		Params:    params,
	}, nil
}
