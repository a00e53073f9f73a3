package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/mlb-stats/internal/app"
	"github.com/riskibarqy/mlb-stats/internal/config"
	"github.com/riskibarqy/mlb-stats/internal/platform/logging"
)

var (
	cfg    config.Config
	logger = logging.NewNop()

	verbose  int
	quiet    bool
	dbURL    string
	dbPath   string
	cacheDir string
)

var rootCmd = &cobra.Command{
	Use:   "mlb-stats",
	Short: "Fetch and store MLB game data",
	Long: "Collects game schedules, box scores, rosters and pitch-level data from the MLB Stats API " +
		"and stores it in SQLite or Postgres. Re-running a sync converges to the same rows.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		applyFlagOverrides(cmd, &c)
		cfg = c

		logger = logging.New(logging.Options{
			Format: cfg.LogFormat,
			Level:  logLevel(cmd, cfg),
			Output: cmd.ErrOrStderr(),
		})
		logging.SetDefault(logger)
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&verbose, "verbose", "v", "increase verbosity (-v for INFO, -vv for DEBUG)")
	flags.BoolVar(&quiet, "quiet", false, "suppress output (ERROR level only)")
	flags.StringVar(&dbURL, "db-url", "", "database URL, postgres://... or sqlite://path (env MLB_STATS_DB_URL)")
	flags.StringVar(&dbPath, "db-path", "", "SQLite database file used when no URL is set (env MLB_STATS_DB_PATH)")
	flags.StringVar(&cacheDir, "cache-dir", "", "directory for cached API responses (env MLB_STATS_CACHE_DIR)")
}

func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("db-url") {
		c.DBURL = dbURL
	}
	if flags.Changed("db-path") {
		c.DBPath = dbPath
		if !flags.Changed("db-url") {
			c.DBURL = ""
		}
	}
	if flags.Changed("cache-dir") {
		c.CacheDir = cacheDir
	}
}

// logLevel gives verbosity flags precedence over LOG_LEVEL.
func logLevel(cmd *cobra.Command, c config.Config) logging.Level {
	flags := cmd.Flags()
	switch {
	case quiet:
		return logging.VerbosityLevel(-1)
	case flags.Changed("verbose"):
		return logging.VerbosityLevel(verbose)
	case c.LogLevelSet:
		return c.LogLevel
	default:
		return logging.VerbosityLevel(0)
	}
}

// openApp builds the collector for commands that touch the database.
func openApp(cmd *cobra.Command) (*app.App, error) {
	return app.New(cmd.Context(), cfg, logger)
}

func closeApp(cmd *cobra.Command, a *app.App) {
	if err := a.Close(context.WithoutCancel(cmd.Context())); err != nil {
		logger.Warn("close collector", "error", err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err, os.Stderr))
}
