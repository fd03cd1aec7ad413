package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/platformquest/internal/infrastructure/storage"
)

var flagLimit int

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List recent attempts",
	Long: `Display the latest attempts stored with --db, newest first,
followed by the fastest clear of each stage.

Examples:
  game records --db ~/.platformquest/runs.db
  game records --db runs.db --limit 20`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDBPath == "" {
			return errors.New("records: --db is required")
		}
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		return printRecords(cmd.Context(), cmd.OutOrStdout(), store, flagLimit)
	},
}

func init() {
	recordsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of attempts to show")
}

// printRecords writes the latest attempts and each listed stage's best clear.
func printRecords(ctx context.Context, w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No attempts recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-6s  %-8s  %-8s  %-6s  %s\n", "Stage", "Outcome", "Ticks", "Kills", "Date")
	fmt.Fprintf(w, "  %-6s  %-8s  %-8s  %-6s  %s\n", "-----", "-------", "-----", "-----", "----")
	stages := make([]string, 0, 3)
	seen := make(map[string]bool)
	for _, r := range runs {
		fmt.Fprintf(w, "  %-6s  %-8s  %-8d  %-6d  %s\n",
			r.Stage, r.Outcome, r.Ticks, r.Kills, r.CreatedAt.Format("2006-01-02 15:04"))
		if !seen[r.Stage] {
			seen[r.Stage] = true
			stages = append(stages, r.Stage)
		}
	}

	fmt.Fprintln(w)
	for _, st := range stages {
		best, ok, err := store.FastestClear(ctx, st)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(w, "Fastest %s clear: %d ticks\n", st, best.Ticks)
		}
	}
	return nil
}
