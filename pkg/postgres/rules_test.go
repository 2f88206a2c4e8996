package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbitrosmx/designador/pkg/core/model"
	"github.com/arbitrosmx/designador/pkg/db"
)

func TestRuleFromRow(t *testing.T) {
	updatedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	row := db.InternalRuleRow{
		ID:        "R1",
		RefereeID: "C1",
		Kind:      string(model.RuleForbiddenTeams),
		Enabled:   true,
		Params:    []byte(`{"equipos":["TH","TA"]}`),
		UpdatedBy: "DEL-1",
		UpdatedAt: updatedAt,
		Reason:    "vetado por el club",
		Position:  2,
	}

	rule, err := ruleFromRow(row)
	require.NoError(t, err)

	assert.Equal(t, "R1", rule.ID)
	assert.Equal(t, "C1", rule.RefereeID)
	assert.True(t, rule.Enabled)
	assert.Equal(t, "DEL-1", rule.UpdatedBy)
	assert.Equal(t, updatedAt, rule.UpdatedAt)
	assert.Equal(t, model.RuleForbiddenTeams, rule.Kind())

	params, ok := rule.Params.(*model.ForbiddenTeamsParams)
	require.True(t, ok)
	assert.Equal(t, []string{"TH", "TA"}, params.TeamIDs)
}

func TestRuleFromRow_UnknownKind(t *testing.T) {
	_, err := ruleFromRow(db.InternalRuleRow{ID: "R9", Kind: "RA_desconocida"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "R9")
}
