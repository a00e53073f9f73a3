package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/mlb-stats/internal/domain/synclog"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent sync runs from sync_log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(cmd, a)

		entries, err := a.SyncLog.Latest(cmd.Context(), runsLimit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No runs found.")
			return nil
		}
		formatRuns(cmd.OutOrStdout(), entries)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the collector version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mlb-stats %s\n", cfg.ServiceVersion)
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum number of runs to show")
	rootCmd.AddCommand(runsCmd, versionCmd)
}

func formatRuns(w io.Writer, entries []synclog.Entry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSCOPE\tSTATUS\tRECORDS\tSTARTED\tERROR")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.SyncType, runScope(e), e.Status, orDash(e.RecordsProcessed), e.StartedAt, truncate(deref(e.ErrorMessage), 60))
	}
	_ = tw.Flush()
}

func runScope(e synclog.Entry) string {
	if e.GamePK != nil {
		return fmt.Sprintf("game %d", *e.GamePK)
	}
	if e.StartDate != nil && e.EndDate != nil {
		return *e.StartDate + ".." + *e.EndDate
	}
	return "-"
}

func orDash(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
