package db

import (
	"context"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

// LeagueStore defines the read operations over league configuration
type LeagueStore interface {
	// Leagues returns the leagues found among the given ids; missing ids
	// are simply absent from the result
	Leagues(ctx context.Context, ids []string) ([]model.League, error)
}

// MatchStore defines the read operations over scheduled matches
type MatchStore interface {
	// MatchesByLeague returns every match of the given leagues, including
	// committed assignment fields
	MatchesByLeague(ctx context.Context, leagueIDs []string) ([]model.Match, error)

	// MatchdayNumbers maps matchday id to round number for the given leagues
	MatchdayNumbers(ctx context.Context, leagueIDs []string) (map[string]int, error)
}

// RefereeStore defines the read operations over the referee registry
type RefereeStore interface {
	// Referees returns the pool, restricted to one delegation when
	// delegateID is non-empty
	Referees(ctx context.Context, delegateID string) ([]model.Referee, error)
}

// TeamStore defines the read operations over team difficulty data
type TeamStore interface {
	TeamTiers(ctx context.Context) (map[string]int, error)
}

// RuleStore defines the read operations over per-referee internal rules
type RuleStore interface {
	// EnabledRulesByReferee returns each referee's enabled rules in
	// definition order
	EnabledRulesByReferee(ctx context.Context, refereeIDs []string) (map[string][]model.InternalRule, error)
}

// CalendarStore defines the write operations used by calendar generation
type CalendarStore interface {
	InsertCalendar(ctx context.Context, entries []CalendarEntry, matches []model.Match) error
}
