package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/mlb-stats/internal/usecase"
)

type syncOptions struct {
	startDate    string
	endDate      string
	season       int
	startSeason  int
	endSeason    int
	all          bool
	forceRefresh bool
}

// syncPlan is one of: a single game, a date range, or an inclusive range of seasons.
type syncPlan struct {
	gamePK      int64
	single      bool
	start, end  time.Time
	seasons     bool
	startSeason int
	endSeason   int
}

var syncOpts syncOptions

var syncCmd = &cobra.Command{
	Use:   "sync [gamePk]",
	Short: "Sync games, teams, players, stat lines, plays and rosters",
	Long: "Syncs a single game by gamePk, a date range, a season, or a range of seasons.\n\n" +
		"Examples:\n" +
		"  mlb-stats sync 745927\n" +
		"  mlb-stats sync --start-date 2024-07-01 --end-date 2024-07-07\n" +
		"  mlb-stats sync --season 2024\n" +
		"  mlb-stats sync --start-season 2010 --end-season 2015\n" +
		"  mlb-stats sync --all --force-refresh",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := syncOpts.plan(args, time.Now().UTC())
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, a)

		out := cmd.OutOrStdout()
		ctx := cmd.Context()

		switch {
		case plan.single:
			fmt.Fprintf(out, "Syncing game %d\n", plan.gamePK)
			if err := a.Backfill.SyncGame(ctx, plan.gamePK); err != nil {
				logger.Error("game sync failed", "game_pk", plan.gamePK, "error", err)
				fmt.Fprintln(out, "Sync failed (game may not have started)")
				return errSyncFailed
			}
			fmt.Fprintln(out, "Sync complete")
			return nil

		case plan.seasons:
			var total usecase.SyncResult
			for year := plan.startSeason; year <= plan.endSeason; year++ {
				start, end, err := usecase.SeasonDates(year)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n=== Syncing %d season ===\n", year)
				res, err := a.Backfill.SyncBoxscoresForDateRange(ctx, start, end, progressPrinter(out, fmt.Sprintf("[%d] ", year)), syncOpts.forceRefresh)
				fmt.Fprintln(out)
				if err != nil {
					return fmt.Errorf("sync %d season: %w", year, err)
				}
				fmt.Fprintf(out, "[%d] %d games synced, %d failures\n", year, res.Success, res.Failure)
				total.Success += res.Success
				total.Failure += res.Failure
			}
			fmt.Fprintln(out, "\n=== All seasons complete ===")
			fmt.Fprintf(out, "Total: %d games synced, %d failures\n", total.Success, total.Failure)
			if total.Failure > 0 {
				return errSyncFailed
			}
			return nil

		default:
			fmt.Fprintf(out, "Syncing games from %s to %s\n", plan.start.Format(time.DateOnly), plan.end.Format(time.DateOnly))
			res, err := a.Backfill.SyncBoxscoresForDateRange(ctx, plan.start, plan.end, progressPrinter(out, ""), syncOpts.forceRefresh)
			fmt.Fprintln(out)
			if err != nil {
				return err
			}
			return printSummary(out, res)
		}
	},
}

var pbpOpts struct {
	startDate    string
	endDate      string
	forceRefresh bool
}

var syncPBPCmd = &cobra.Command{
	Use:   "sync-pbp",
	Short: "Sync at-bats, pitches and batted balls for a date range",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		start, end, err := parseDateRange(pbpOpts.startDate, pbpOpts.endDate)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, a)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Syncing play-by-play from %s to %s\n", pbpOpts.startDate, pbpOpts.endDate)
		res, err := a.Backfill.SyncPlayByPlayForDateRange(cmd.Context(), start, end, progressPrinter(out, ""), pbpOpts.forceRefresh)
		fmt.Fprintln(out)
		if err != nil {
			return err
		}
		return printSummary(out, res)
	},
}

func init() {
	flags := syncCmd.Flags()
	flags.StringVar(&syncOpts.startDate, "start-date", "", "start date (YYYY-MM-DD)")
	flags.StringVar(&syncOpts.endDate, "end-date", "", "end date (YYYY-MM-DD)")
	flags.IntVar(&syncOpts.season, "season", 0, "season year, alternative to a date range")
	flags.BoolVar(&syncOpts.all, "all", false, "sync every season from 2008 to the current year")
	flags.IntVar(&syncOpts.startSeason, "start-season", 0, "first season, alone or with --end-season")
	flags.IntVar(&syncOpts.endSeason, "end-season", 0, "last season, alone or with --start-season")
	flags.BoolVar(&syncOpts.forceRefresh, "force-refresh", false, "always fetch the schedule, ignoring games already stored")

	pbp := syncPBPCmd.Flags()
	pbp.StringVar(&pbpOpts.startDate, "start-date", "", "start date (YYYY-MM-DD)")
	pbp.StringVar(&pbpOpts.endDate, "end-date", "", "end date (YYYY-MM-DD)")
	pbp.BoolVar(&pbpOpts.forceRefresh, "force-refresh", false, "always fetch the schedule, ignoring games already stored")
	_ = syncPBPCmd.MarkFlagRequired("start-date")
	_ = syncPBPCmd.MarkFlagRequired("end-date")

	rootCmd.AddCommand(syncCmd, syncPBPCmd)
}

// plan validates the option combination. Zero season values mean unset.
func (o syncOptions) plan(args []string, today time.Time) (syncPlan, error) {
	dates := o.startDate != "" || o.endDate != ""
	seasonRange := o.startSeason != 0 || o.endSeason != 0

	switch {
	case len(args) == 1:
		if dates || o.season != 0 || o.all || seasonRange {
			return syncPlan{}, usagef("Cannot use gamePk with date/season options")
		}
		pk, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || pk <= 0 {
			return syncPlan{}, usagef("invalid gamePk %q", args[0])
		}
		return syncPlan{gamePK: pk, single: true}, nil

	case o.all:
		if dates || o.season != 0 || seasonRange {
			return syncPlan{}, usagef("Cannot use --all with other date/season options")
		}
		return syncPlan{seasons: true, startSeason: usecase.EarliestSeason, endSeason: today.Year()}, nil

	case seasonRange:
		if dates || o.season != 0 {
			return syncPlan{}, usagef("Cannot use --start-season/--end-season with date range or --season")
		}
		first, last := o.startSeason, o.endSeason
		if first == 0 {
			first = usecase.EarliestSeason
		}
		if last == 0 {
			last = today.Year()
		}
		if first > last {
			return syncPlan{}, usagef("--start-season (%d) cannot be after --end-season (%d)", first, last)
		}
		if first < usecase.EarliestSeason {
			return syncPlan{}, usagef("Data is only available from %d onwards (PITCHf/x era)", usecase.EarliestSeason)
		}
		return syncPlan{seasons: true, startSeason: first, endSeason: last}, nil

	case o.season != 0:
		if dates {
			return syncPlan{}, usagef("Cannot use --season with --start-date/--end-date")
		}
		start, end, err := usecase.SeasonDates(o.season)
		if err != nil {
			return syncPlan{}, usagef("%v", err)
		}
		return syncPlan{start: start, end: end}, nil

	case o.startDate == "" || o.endDate == "":
		return syncPlan{}, usagef("Must provide gamePk, --season, --all, season range, or both --start-date and --end-date")
	}

	start, end, err := parseDateRange(o.startDate, o.endDate)
	if err != nil {
		return syncPlan{}, err
	}
	return syncPlan{start: start, end: end}, nil
}

func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := usecase.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, usagef("Invalid date format: %v", err)
	}
	end, err := usecase.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, usagef("Invalid date format: %v", err)
	}
	return start, end, nil
}

// progressPrinter rewrites a single terminal line per game.
func progressPrinter(out io.Writer, prefix string) usecase.ProgressFunc {
	return func(current, total int) {
		fmt.Fprintf(out, "\r%sSyncing game %d/%d...", prefix, current, total)
	}
}

func printSummary(out io.Writer, res usecase.SyncResult) error {
	fmt.Fprintf(out, "Sync complete: %d games synced, %d failures\n", res.Success, res.Failure)
	if res.Failure > 0 {
		return errSyncFailed
	}
	return nil
}
