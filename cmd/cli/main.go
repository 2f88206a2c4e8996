package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arbitrosmx/designador/internal/config"
	"github.com/arbitrosmx/designador/pkg/cache"
	"github.com/arbitrosmx/designador/pkg/core/model"
	"github.com/arbitrosmx/designador/pkg/core/services"
	"github.com/arbitrosmx/designador/pkg/metrics"
	"github.com/arbitrosmx/designador/pkg/postgres"
	"github.com/arbitrosmx/designador/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg      *config.Config
	database *postgres.DB
	cache    *cache.Cache
	registry *prometheus.Registry
	recorder metrics.SuggestionMetrics
	logger   *zap.Logger
	ctx      context.Context
}

var (
	env string
	app *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "designador",
		Short: "Designador CLI - Suggest referee ternas for scheduled matches",
		Long:  `A CLI tool for suggesting referee assignments, validating conflicts, and managing league calendars.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.registry != nil && app.logger != nil {
					metrics.LogSummary(app.registry, app.logger)
				}
				if app.database != nil {
					app.database.Close()
				}
				if app.cache != nil {
					app.cache.Close()
				}
				if app.logger != nil {
					app.logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(suggestTernasCmd())
	rootCmd.AddCommand(listRefereesCmd())
	rootCmd.AddCommand(defineCalendarCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, database, cache, and metrics
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	app.logger.Info("Loading configuration")
	app.cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	app.logger.Info("Connecting to database")
	app.database, err = postgres.NewDB(app.ctx, app.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.logger.Info("Running database migrations")
	if err := app.database.RunMigrations(app.ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.logger.Debug("Database ready")

	if app.cfg.RedisAddr != "" {
		app.logger.Info("Connecting to redis", zap.String("addr", app.cfg.RedisAddr))
		ttl := cache.DefaultTTL
		if app.cfg.CacheTTLSeconds != nil {
			ttl = time.Duration(*app.cfg.CacheTTLSeconds) * time.Second
		}
		app.cache, err = cache.New(app.ctx, app.cfg.RedisAddr, ttl)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.logger.Debug("Cache initialized successfully")
	} else {
		app.logger.Info("No redis address configured, caching disabled")
	}

	app.registry = prometheus.NewRegistry()
	app.recorder = metrics.NewMetrics(app.registry)

	return nil
}

// parseMatchKey parses a league/group/matchday/match tuple
func parseMatchKey(arg string) (model.MatchKey, error) {
	parts := strings.Split(arg, "/")
	if len(parts) != 4 {
		return model.MatchKey{}, fmt.Errorf("expected league/group/matchday/match, got %q", arg)
	}
	for _, part := range parts {
		if part == "" {
			return model.MatchKey{}, fmt.Errorf("empty component in match key %q", arg)
		}
	}
	return model.MatchKey{
		LeagueID:   parts[0],
		GroupID:    parts[1],
		MatchdayID: parts[2],
		MatchID:    parts[3],
	}, nil
}

// Command definitions

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <league/group/matchday/match>",
		Short: "Suggest a referee terna for a single match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseMatchKey(args[0])
			if err != nil {
				return err
			}

			terna, err := services.SuggestTerna(app.ctx, app.database, app.cache, app.cfg, app.logger, app.recorder, key)
			if err != nil {
				return err
			}

			printTerna(*terna)
			return nil
		},
	}
}

func suggestTernasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggestTernas <league/group/matchday/match>...",
		Short: "Suggest referee ternas for a batch of matches, spreading the pool",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]model.MatchKey, 0, len(args))
			for _, arg := range args {
				key, err := parseMatchKey(arg)
				if err != nil {
					return err
				}
				keys = append(keys, key)
			}

			result, err := services.SuggestTernas(app.ctx, app.database, app.cache, app.cfg, app.logger, app.recorder, keys)
			if err != nil {
				return err
			}

			fmt.Printf("\nSuggested %d of %d matches\n", result.Suggested, len(result.Results))
			for _, terna := range result.Results {
				printTerna(terna)
			}
			return nil
		},
	}
}

func listRefereesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listReferees",
		Short: "List the referee pool with eligibility assessment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ListReferees(app.ctx, app.database, app.logger, app.cfg.DelegateID)
			if err != nil {
				return err
			}

			fmt.Printf("\nReferee pool (%d total, %d eligible)\n\n", len(result.Referees), result.Eligible)
			fmt.Printf("%-12s %-25s %-12s %-6s %s\n", "ID", "NAME", "STATUS", "RCS", "NOTES")
			for _, summary := range result.Referees {
				notes := summary.WhyNot
				if summary.Eligible {
					notes = "-"
				}
				fmt.Printf("%-12s %-25s %-12s %-6.1f %s\n",
					summary.Referee.ID,
					summary.Referee.Name,
					summary.Referee.Status,
					summary.RCS,
					notes)
			}
			fmt.Println()
			return nil
		},
	}
}

func defineCalendarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defineCalendar <league_id> <group_id> <start_date> <rounds>",
		Short: "Generate the matchday calendar for a league group",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse("2006-01-02", args[2])
			if err != nil {
				return fmt.Errorf("start_date must be YYYY-MM-DD: %w", err)
			}
			rounds, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("rounds must be a number: %w", err)
			}

			result, err := services.DefineCalendar(app.ctx, app.database, app.cfg, app.logger, args[0], args[1], start, rounds)
			if err != nil {
				return err
			}

			fmt.Printf("\nCalendar created: %d matchdays, %d placeholder matches\n\n", len(result.Entries), len(result.Matches))
			for _, entry := range result.Entries {
				fmt.Printf("  J%-3d %s\n", entry.Number, entry.Date.Format("2006-01-02 (Monday)"))
			}
			fmt.Println()
			return nil
		},
	}
}

// printTerna renders one suggestion result
func printTerna(terna model.SuggestedTerna) {
	fmt.Printf("\nMatch %s (league %s)\n", terna.Key.MatchID, terna.Key.LeagueID)

	if !terna.HasSuggestion {
		fmt.Printf("  No suggestion: %s\n", terna.Reason)
		printConflicts(terna)
		return
	}

	fmt.Printf("  Central:  %s\n", stringOrDash(terna.CentralID))
	fmt.Printf("  AA1:      %s\n", stringOrDash(terna.AA1ID))
	fmt.Printf("  AA2:      %s\n", stringOrDash(terna.AA2ID))
	if terna.AssessorID != nil {
		fmt.Printf("  Assessor: %s\n", *terna.AssessorID)
	}
	if terna.MDS != nil {
		fmt.Printf("  MDS: %.1f (central tolerance %.1f)\n", *terna.MDS, terna.CentralTolerance)
	}
	printConflicts(terna)
}

func printConflicts(terna model.SuggestedTerna) {
	for _, conflict := range terna.ScheduleConflicts {
		fmt.Printf("  ! schedule clash: %s also officiates match %s at %s\n",
			conflict.RefereeID, conflict.OtherMatchID, conflict.OtherKickoff.Format("2006-01-02 15:04"))
	}
	for _, conflict := range terna.RecentTeamConflicts {
		fmt.Printf("  ! recent team: %s saw one of these teams in match %s\n",
			conflict.RefereeID, conflict.OtherMatchID)
	}
	for _, conflict := range terna.SameDayConflicts {
		fmt.Printf("  ~ same day: %s also works match %s\n",
			conflict.RefereeID, conflict.OtherMatchID)
	}
}

func stringOrDash(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}
