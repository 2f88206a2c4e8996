package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/arbitrosmx/designador/pkg/core/designator"
	"github.com/arbitrosmx/designador/pkg/core/model"
	"github.com/arbitrosmx/designador/pkg/db"
)

// RefereeSummary is one referee with their eligibility assessment
type RefereeSummary struct {
	Referee  model.Referee
	RCS      float64
	Eligible bool
	// WhyNot is empty for eligible referees
	WhyNot string
}

// ListRefereesResult contains the referee pool listing
type ListRefereesResult struct {
	Referees []RefereeSummary
	Eligible int
}

// ListReferees lists the referee pool with the same eligibility assessment
// the suggestion pipeline applies, so a delegate can see who would never be
// proposed and why.
func ListReferees(ctx context.Context, database db.RefereeStore, logger *zap.Logger, delegateID string) (*ListRefereesResult, error) {
	logger.Debug("Fetching referees", zap.String("delegate_id", delegateID))

	referees, err := database.Referees(ctx, delegateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch referees: %w", err)
	}
	logger.Debug("Found referees", zap.Int("count", len(referees)))

	summaries := make([]RefereeSummary, 0, len(referees))
	eligible := 0
	for _, ref := range referees {
		summary := summarize(ref)
		if summary.Eligible {
			eligible++
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Referee.ID < summaries[j].Referee.ID
	})

	logger.Info("Referee pool listed",
		zap.Int("total", len(summaries)),
		zap.Int("eligible", eligible))

	return &ListRefereesResult{
		Referees: summaries,
		Eligible: eligible,
	}, nil
}

func summarize(ref model.Referee) RefereeSummary {
	summary := RefereeSummary{Referee: ref}

	rcs, ok := designator.CompetenceScore(&ref)
	if ok {
		summary.RCS = rcs
	}

	pool := designator.BasePool([]model.Referee{ref})
	if len(pool) == 1 {
		summary.Eligible = true
		return summary
	}

	switch {
	case !ok:
		summary.WhyNot = "no resolvable competence score"
	case len(ref.RolesAllowed) == 0 && !ref.CanAssess:
		summary.WhyNot = "no roles allowed"
	default:
		summary.WhyNot = fmt.Sprintf("status %s", ref.Status)
	}

	return summary
}
