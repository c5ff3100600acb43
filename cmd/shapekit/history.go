package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapekit/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryAll   bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded eval runs",
	Long: `Lists the runs recorded with 'shapekit eval --record' for the
current scene, newest first. With a run ID, prints that run's results.

Examples:
  shapekit history
  shapekit history --all
  shapekit history 12
  shapekit history --clear --scene pool`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryAll, "all", false, "Show runs of every scene")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the recorded runs of the scene")
}

func runHistory(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("cannot open history database: %v", err)
	}
	defer store.Close()

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fail("invalid run ID %q", args[0])
		}
		printRun(store, id)
		return
	}

	_, name := sceneSource()
	if flagHistoryClear {
		if err := store.ClearRuns(name); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared history of %s.\n", name)
		return
	}
	if flagHistoryAll {
		name = ""
	}

	runs, err := store.RecentRuns(name, flagHistoryLimit)
	if err != nil {
		fail("%v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'shapekit eval --record' to record one.")
		return
	}

	fmt.Printf("  %-5s  %-12s  %-7s  %-6s  %s\n", "ID", "Scene", "Queries", "Failed", "Date")
	fmt.Printf("  %-5s  %-12s  %-7s  %-6s  %s\n", "--", "-----", "-------", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-12s  %-7d  %-6d  %s\n",
			r.ID, r.Scene, r.Queries, r.Failed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if !flagHistoryAll {
		if stats, err := store.Stats(name); err == nil {
			fmt.Println()
			fmt.Printf("%d runs of %s, %d with failures\n", stats.Runs, name, stats.FailedAny)
		}
	}
}

func printRun(store *storage.Store, id int64) {
	results, err := store.RunResults(id)
	if err != nil {
		fail("%v", err)
	}
	if len(results) == 0 {
		fail("no results for run %d", id)
	}
	for i, r := range results {
		status := "ok"
		if !r.OK {
			status = "error"
		}
		fmt.Printf("%d\t%s\t%s\t%s\n", i+1, r.Query, status, r.Text)
	}
}
