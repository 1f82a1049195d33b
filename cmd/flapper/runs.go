package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flapper/internal/platform/tui"
	"github.com/vovakirdan/tui-flapper/internal/storage"
)

const gameID = "flapper"

var (
	flagRunsLimit  int
	flagRunsRecent bool
	flagRunsPlain  bool
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse the run journal",
	Long: `Show journaled runs with their score, eaten dots and perfect areas.

On a terminal an interactive table opens (Tab switches between best and
recent runs). Use --plain or pipe the output for a text listing.

Examples:
  flapper runs
  flapper runs --recent --plain
  flapper runs --limit 5 --plain
  flapper runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to list in plain mode")
	runsCmd.Flags().BoolVar(&flagRunsRecent, "recent", false, "List the latest runs instead of the best")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a text listing instead of the interactive table")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all journaled runs")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(settings.Database)
	if err != nil {
		return fmt.Errorf("error opening run journal: %w", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Run journal cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagRunsPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunRuns(store, gameID, width, height)
	}

	var runs []storage.RunRecord
	if flagRunsRecent {
		runs, err = store.RecentRuns(gameID, flagRunsLimit)
	} else {
		runs, err = store.BestRuns(gameID, flagRunsLimit)
	}
	if err != nil {
		return err
	}
	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}

	title := "Best runs"
	if flagRunsRecent {
		title = "Recent runs"
	}
	printRuns(cmd.OutOrStdout(), title, runs, stats)
	return nil
}

// printRuns writes a plain text listing of runs.
func printRuns(w io.Writer, title string, runs []storage.RunRecord, stats *storage.Stats) {
	fmt.Fprintf(w, "%s - Flapper\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flapper play' to fill the journal!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-7s  %-7s  %-5s  %s\n", "#", "Score", "Markers", "Perfect", "Areas", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-7s  %-7s  %-5s  %s\n", "--", "-----", "-------", "-------", "-----", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-8d  %-7d  %-7d  %-5d  %s\n",
			i+1, r.Score, r.Markers, r.PerfectAreas, r.AreasPassed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Best: %d  Average: %.0f  Markers: %d  Perfect areas: %d\n",
			stats.Runs, stats.BestScore, stats.AvgScore, stats.TotalMarkers, stats.PerfectAreas)
	}
}
