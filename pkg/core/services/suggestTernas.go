package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elliotchance/pie/v2"
	"go.uber.org/zap"

	"github.com/arbitrosmx/designador/internal/config"
	"github.com/arbitrosmx/designador/pkg/cache"
	"github.com/arbitrosmx/designador/pkg/core/designator"
	"github.com/arbitrosmx/designador/pkg/core/model"
	"github.com/arbitrosmx/designador/pkg/metrics"
)

// SuggestStore defines the database operations needed to build a suggestion
// snapshot
type SuggestStore interface {
	Leagues(ctx context.Context, ids []string) ([]model.League, error)
	MatchesByLeague(ctx context.Context, leagueIDs []string) ([]model.Match, error)
	MatchdayNumbers(ctx context.Context, leagueIDs []string) (map[string]int, error)
	Referees(ctx context.Context, delegateID string) ([]model.Referee, error)
	TeamTiers(ctx context.Context) (map[string]int, error)
	EnabledRulesByReferee(ctx context.Context, refereeIDs []string) (map[string][]model.InternalRule, error)
}

// SuggestTernasResult contains the batch suggestion results
type SuggestTernasResult struct {
	Results   []model.SuggestedTerna
	Suggested int
	Blocked   int
}

// SuggestTernas suggests referee ternas for a batch of matches. The matches
// are processed in the given order and the usage accumulator spreads referees
// and pairs across the batch. Any store failure aborts the whole call; there
// are no partial results.
func SuggestTernas(
	ctx context.Context,
	database SuggestStore,
	cacheClient *cache.Cache,
	cfg *config.Config,
	logger *zap.Logger,
	recorder metrics.SuggestionMetrics,
	keys []model.MatchKey,
) (*SuggestTernasResult, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("no matches given")
	}

	logger.Debug("Starting suggestTernas", zap.Int("match_count", len(keys)))
	start := time.Now()

	snap, err := loadSnapshot(ctx, database, cacheClient, cfg, logger, keys)
	if err != nil {
		return nil, err
	}

	logger.Info("Running suggestion pipeline", zap.Int("match_count", len(keys)))
	results := designator.SuggestBatch(snap, keys)

	suggested := 0
	for _, terna := range results {
		recordOutcome(recorder, terna)
		if terna.HasSuggestion {
			suggested++
		} else {
			logger.Warn("No suggestion for match",
				zap.String("match_id", terna.Key.MatchID),
				zap.String("reason", string(terna.Reason)))
		}
	}

	if len(keys) > 0 {
		recorder.AddSuggestElapsedTimeMs(keys[0].LeagueID, "suggestTernas", time.Since(start))
	}

	logger.Info("Suggestion batch completed",
		zap.Int("suggested", suggested),
		zap.Int("blocked", len(results)-suggested))

	return &SuggestTernasResult{
		Results:   results,
		Suggested: suggested,
		Blocked:   len(results) - suggested,
	}, nil
}

// SuggestTerna suggests a terna for a single match. It runs the same pipeline
// as the batch path with an empty usage accumulator.
func SuggestTerna(
	ctx context.Context,
	database SuggestStore,
	cacheClient *cache.Cache,
	cfg *config.Config,
	logger *zap.Logger,
	recorder metrics.SuggestionMetrics,
	key model.MatchKey,
) (*model.SuggestedTerna, error) {
	logger.Debug("Starting suggestTerna",
		zap.String("league_id", key.LeagueID),
		zap.String("match_id", key.MatchID))
	start := time.Now()

	snap, err := loadSnapshot(ctx, database, cacheClient, cfg, logger, []model.MatchKey{key})
	if err != nil {
		return nil, err
	}

	terna := designator.SuggestMatch(snap, key, nil)
	recordOutcome(recorder, terna)
	recorder.AddSuggestElapsedTimeMs(key.LeagueID, "suggestTerna", time.Since(start))

	if terna.HasSuggestion {
		logger.Info("Terna suggested",
			zap.String("match_id", key.MatchID),
			zap.Stringp("central", terna.CentralID),
			zap.Stringp("aa1", terna.AA1ID),
			zap.Stringp("aa2", terna.AA2ID))
	} else {
		logger.Warn("No suggestion for match",
			zap.String("match_id", key.MatchID),
			zap.String("reason", string(terna.Reason)))
	}

	return &terna, nil
}

// loadSnapshot builds the immutable read model the engine runs over. League
// configuration and team tiers go through the optional redis cache; match,
// referee and rule data is always read fresh.
func loadSnapshot(
	ctx context.Context,
	database SuggestStore,
	cacheClient *cache.Cache,
	cfg *config.Config,
	logger *zap.Logger,
	keys []model.MatchKey,
) (*designator.Snapshot, error) {
	leagueIDs := pie.Unique(pie.Map(keys, func(k model.MatchKey) string { return k.LeagueID }))

	leagues, err := loadLeagues(ctx, database, cacheClient, logger, leagueIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leagues: %w", err)
	}
	logger.Debug("Loaded leagues", zap.Int("count", len(leagues)))

	matches, err := database.MatchesByLeague(ctx, leagueIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}
	logger.Debug("Loaded matches", zap.Int("count", len(matches)))

	matchdayNumbers, err := database.MatchdayNumbers(ctx, leagueIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matchday numbers: %w", err)
	}

	referees, err := database.Referees(ctx, cfg.DelegateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch referees: %w", err)
	}
	logger.Debug("Loaded referees",
		zap.Int("count", len(referees)),
		zap.String("delegate_id", cfg.DelegateID))

	refereeIDs := pie.Map(referees, func(r model.Referee) string { return r.ID })
	rules, err := database.EnabledRulesByReferee(ctx, refereeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch internal rules: %w", err)
	}

	teamTiers, err := loadTeamTiers(ctx, database, cacheClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team tiers: %w", err)
	}

	leaguesByID := make(map[string]model.League, len(leagues))
	for _, league := range leagues {
		leaguesByID[league.ID] = league
	}

	snap := &designator.Snapshot{
		Leagues:         leaguesByID,
		Matches:         matches,
		MatchdayNumbers: matchdayNumbers,
		Referees:        referees,
		RulesByReferee:  rules,
		TeamTiers:       teamTiers,
	}
	if cfg.DefaultTolerance != nil {
		snap.DefaultTolerance = *cfg.DefaultTolerance
	}
	if cfg.RecentTeamWindow != nil {
		snap.RecentTeamWindow = *cfg.RecentTeamWindow
	}
	return snap, nil
}

// loadLeagues reads league configuration through the cache, falling back to
// the store for misses and refilling the cache afterwards.
func loadLeagues(
	ctx context.Context,
	database SuggestStore,
	cacheClient *cache.Cache,
	logger *zap.Logger,
	leagueIDs []string,
) ([]model.League, error) {
	leagues := make([]model.League, 0, len(leagueIDs))
	missing := make([]string, 0)

	for _, id := range leagueIDs {
		var league model.League
		err := cacheClient.Get(ctx, cache.LeagueKey(id), &league)
		if err == nil {
			leagues = append(leagues, league)
			continue
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warn("League cache read failed, falling back to store",
				zap.String("league_id", id), zap.Error(err))
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return leagues, nil
	}

	fromStore, err := database.Leagues(ctx, missing)
	if err != nil {
		return nil, err
	}

	for _, league := range fromStore {
		if err := cacheClient.Set(ctx, cache.LeagueKey(league.ID), league); err != nil {
			logger.Warn("Failed to cache league", zap.String("league_id", league.ID), zap.Error(err))
		}
	}

	return append(leagues, fromStore...), nil
}

// loadTeamTiers reads the tier map through the cache.
func loadTeamTiers(
	ctx context.Context,
	database SuggestStore,
	cacheClient *cache.Cache,
	logger *zap.Logger,
) (map[string]int, error) {
	var tiers map[string]int
	err := cacheClient.Get(ctx, cache.TeamTiersKey(), &tiers)
	if err == nil {
		return tiers, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn("Team tier cache read failed, falling back to store", zap.Error(err))
	}

	tiers, err = database.TeamTiers(ctx)
	if err != nil {
		return nil, err
	}

	if err := cacheClient.Set(ctx, cache.TeamTiersKey(), tiers); err != nil {
		logger.Warn("Failed to cache team tiers", zap.Error(err))
	}

	return tiers, nil
}

// recordOutcome feeds one suggestion result into the metrics recorder.
func recordOutcome(recorder metrics.SuggestionMetrics, terna model.SuggestedTerna) {
	recorder.AddSuggestionOutcome(terna.Key.LeagueID, string(terna.Reason))
	if len(terna.ScheduleConflicts) > 0 {
		recorder.AddConflict(terna.Key.LeagueID, "schedule")
	}
	if len(terna.RecentTeamConflicts) > 0 {
		recorder.AddConflict(terna.Key.LeagueID, "recent_team")
	}
	if len(terna.SameDayConflicts) > 0 {
		recorder.AddConflict(terna.Key.LeagueID, "same_day")
	}
}
