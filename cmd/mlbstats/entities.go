package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/mlb-stats/internal/app"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the database and apply all migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		target, err := app.InitDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		where := target.Path()
		if where == "" {
			where = target.Name
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Database initialized at %s\n", where)
		return nil
	},
}

var syncTeamCmd = &cobra.Command{
	Use:   "sync-team <teamId>",
	Short: "Fetch one team and upsert it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("teamId", args[0])
		if err != nil {
			return err
		}
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, a)

		if err := a.References.SyncTeam(cmd.Context(), id); err != nil {
			return fmt.Errorf("sync team %d: %w", id, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Synced team %d\n", id)
		return nil
	},
}

var syncPlayerCmd = &cobra.Command{
	Use:   "sync-player <playerId>...",
	Short: "Fetch players (and their current teams) and upsert them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := parseID("playerId", arg)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, a)

		if len(ids) == 1 {
			if err := a.References.SyncPlayer(cmd.Context(), ids[0]); err != nil {
				return fmt.Errorf("sync player %d: %w", ids[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Synced player %d\n", ids[0])
			return nil
		}
		n, err := a.References.SyncPlayers(cmd.Context(), ids)
		if err != nil {
			return fmt.Errorf("sync players: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Synced %d of %d players\n", n, len(ids))
		return nil
	},
}

var venueYear int

var syncVenueCmd = &cobra.Command{
	Use:   "sync-venue <venueId>",
	Short: "Fetch a venue for one season unless that season is already stored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("venueId", args[0])
		if err != nil {
			return err
		}
		year := venueYear
		if year == 0 {
			year = time.Now().UTC().Year()
		}
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, a)

		fetched, err := a.References.SyncVenue(cmd.Context(), id, year)
		if err != nil {
			return fmt.Errorf("sync venue %d: %w", id, err)
		}
		if fetched {
			fmt.Fprintf(cmd.OutOrStdout(), "Synced venue %d for %d\n", id, year)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Venue %d for %d already stored\n", id, year)
		}
		return nil
	},
}

var syncRosterCmd = &cobra.Command{
	Use:   "sync-roster <gamePk>",
	Short: "Replace the game-day active rosters of both teams in a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := parseID("gamePk", args[0])
		if err != nil {
			return err
		}
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, a)

		if err := a.Games.SyncRostersForGame(cmd.Context(), pk); err != nil {
			return fmt.Errorf("sync rosters for game %d: %w", pk, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Synced rosters for game %d\n", pk)
		return nil
	},
}

func init() {
	syncVenueCmd.Flags().IntVar(&venueYear, "year", 0, "season the venue row is keyed by (default current year)")

	rootCmd.AddCommand(initDBCmd, syncTeamCmd, syncPlayerCmd, syncVenueCmd, syncRosterCmd)
}

func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, usagef("invalid %s %q", name, raw)
	}
	return id, nil
}
