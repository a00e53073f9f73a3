package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/mlb-stats/internal/app"
	"github.com/riskibarqy/mlb-stats/internal/platform/cache"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <game_feed|boxscore|play_by_play> <gamePk>",
	Short: "Print a raw game document, honoring the response cache",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(args[0])
		if err != nil {
			return err
		}
		pk, err := parseID("gamePk", args[1])
		if err != nil {
			return err
		}

		client := app.NewClient(cfg, app.NewCache(cfg, logger), logger)
		raw, err := client.Raw(cmd.Context(), kind, pk)
		if err != nil {
			return fmt.Errorf("fetch %s %d: %w", kind, pk, err)
		}
		_, err = cmd.OutOrStdout().Write(append(raw, '\n'))
		return err
	},
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and repair the response cache",
}

var cacheVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Remove cached documents that are not valid JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := cache.NewStore(cfg.CacheDir, logger)
		report, err := store.Verify(cmd.Context(), cfg.CacheVerifyWorkers)
		fmt.Fprintf(cmd.OutOrStdout(), "Scanned %d cached documents, removed %d\n", report.Scanned, report.Removed)
		return err
	},
}

var cacheDeleteCmd = &cobra.Command{
	Use:   "delete <game_feed|boxscore|play_by_play> <gamePk>",
	Short: "Drop one cached document so the next sync refetches it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(args[0])
		if err != nil {
			return err
		}
		pk, err := parseID("gamePk", args[1])
		if err != nil {
			return err
		}
		store := cache.NewStore(cfg.CacheDir, logger)
		if err := store.Delete(kind, strconv.FormatInt(pk, 10)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s/%d\n", kind, pk)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheVerifyCmd, cacheDeleteCmd)
	rootCmd.AddCommand(fetchCmd, cacheCmd)
}

func parseKind(raw string) (cache.Kind, error) {
	kind := cache.Kind(raw)
	if !cache.IsCacheable(kind) {
		return "", usagef("unknown document type %q: want %s, %s or %s", raw, cache.KindGameFeed, cache.KindBoxscore, cache.KindPlayByPlay)
	}
	return kind, nil
}
