package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beltsim/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived simulation runs",
	Long: `Show archived runs, most recent first.

Examples:
  beltsim runs
  beltsim runs --limit 50`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run archive: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.Runs(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No archived runs.")
		fmt.Println()
		fmt.Println("Run 'beltsim run <file> --save' to archive a simulation.")
		return
	}

	fmt.Println("Archived runs:")
	fmt.Println()
	fmt.Printf("  %-4s  %-20s  %-8s  %-6s  %-6s  %-10s  %s\n",
		"ID", "Source", "Duration", "Step", "Bodies", "Collisions", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %-6s  %-6s  %-10s  %s\n",
		"--", "------", "--------", "----", "------", "----------", "----")

	for _, r := range runs {
		fmt.Printf("  %-4d  %-20s  %-8.1f  %-6.1f  %-6d  %-10d  %s\n",
			r.ID, r.Source, r.Duration, r.TimeStep, r.BodyCount, r.EventCount,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'beltsim events <id>' to browse a run's collisions.")
}
