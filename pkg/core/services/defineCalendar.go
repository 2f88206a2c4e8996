package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/arbitrosmx/designador/internal/config"
	"github.com/arbitrosmx/designador/pkg/core/model"
	"github.com/arbitrosmx/designador/pkg/db"
)

// CalendarResult represents a generated league calendar
type CalendarResult struct {
	Entries []db.CalendarEntry
	Matches []model.Match
}

// DefineCalendar generates the matchday calendar for one league group and
// persists it. Matchday dates come from the configured recurrence rule
// (weekly from the start date when none is configured), skipping blackout
// dates. Each matchday gets placeholder fixtures for the delegate to fill in
// with the actual pairings.
func DefineCalendar(
	ctx context.Context,
	database db.CalendarStore,
	cfg *config.Config,
	logger *zap.Logger,
	leagueID string,
	groupID string,
	start time.Time,
	rounds int,
) (*CalendarResult, error) {
	if rounds <= 0 {
		return nil, fmt.Errorf("round count must be positive, got %d", rounds)
	}

	logger.Info("Defining calendar",
		zap.String("league_id", leagueID),
		zap.String("group_id", groupID),
		zap.Time("start", start),
		zap.Int("rounds", rounds))

	var override *config.CalendarOverride
	if len(cfg.CalendarOverrides) > 0 {
		override = &cfg.CalendarOverrides[0]
	}

	dates, err := matchdayDates(start, rounds, override)
	if err != nil {
		return nil, err
	}
	logger.Debug("Generated matchday dates",
		zap.Int("count", len(dates)),
		zap.Time("first", dates[0]),
		zap.Time("last", dates[len(dates)-1]))

	matchesPerDay := 0
	if override != nil && override.MatchesPerDay != nil {
		matchesPerDay = *override.MatchesPerDay
	}

	entries := make([]db.CalendarEntry, 0, rounds)
	matches := make([]model.Match, 0, rounds*matchesPerDay)
	for i, date := range dates {
		entry := db.CalendarEntry{
			MatchdayID: uuid.New().String(),
			LeagueID:   leagueID,
			GroupID:    groupID,
			Number:     i + 1,
			Date:       date,
		}
		entries = append(entries, entry)

		for j := 0; j < matchesPerDay; j++ {
			matches = append(matches, model.Match{
				ID:         uuid.New().String(),
				LeagueID:   leagueID,
				GroupID:    groupID,
				MatchdayID: entry.MatchdayID,
				Kickoff:    date,
			})
		}
	}

	if err := database.InsertCalendar(ctx, entries, matches); err != nil {
		return nil, fmt.Errorf("failed to insert calendar: %w", err)
	}

	logger.Info("Calendar created",
		zap.Int("matchdays", len(entries)),
		zap.Int("placeholder_matches", len(matches)))

	return &CalendarResult{Entries: entries, Matches: matches}, nil
}

// matchdayDates expands the recurrence into the requested number of matchday
// dates, skipping configured blackout dates.
func matchdayDates(start time.Time, rounds int, override *config.CalendarOverride) ([]time.Time, error) {
	blackouts := make(map[string]bool)
	ruleText := fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s", rruleWeekday(start.Weekday()))
	if override != nil {
		ruleText = override.RRule
		for _, date := range override.BlackoutDates {
			blackouts[date] = true
		}
	}

	rule, err := rrule.StrToRRule(ruleText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar rrule: %w", err)
	}
	rule.DTStart(start)

	dates := make([]time.Time, 0, rounds)
	iter := rule.Iterator()
	for len(dates) < rounds {
		occurrence, ok := iter()
		if !ok {
			return nil, fmt.Errorf("recurrence rule yielded only %d of %d matchdays", len(dates), rounds)
		}
		if blackouts[occurrence.Format("2006-01-02")] {
			continue
		}
		dates = append(dates, occurrence)
	}

	return dates, nil
}

func rruleWeekday(day time.Weekday) string {
	letters := map[time.Weekday]string{
		time.Monday:    "MO",
		time.Tuesday:   "TU",
		time.Wednesday: "WE",
		time.Thursday:  "TH",
		time.Friday:    "FR",
		time.Saturday:  "SA",
		time.Sunday:    "SU",
	}
	return letters[day]
}
