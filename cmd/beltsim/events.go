package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/beltsim/internal/platform/tui"
	"github.com/vovakirdan/beltsim/internal/storage"
)

var eventsCmd = &cobra.Command{
	Use:   "events <run-id>",
	Short: "Browse an archived run's collisions",
	Long: `Open an interactive table of the collisions recorded for an archived run.

Examples:
  beltsim events 3`,
	Args: cobra.ExactArgs(1),
	Run:  runEvents,
}

func runEvents(cmd *cobra.Command, args []string) {
	runID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run archive: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	run, err := store.Run(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: run %d not found\n", runID)
		os.Exit(1)
	}

	events, err := store.RunEvents(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving collisions: %v\n", err)
		os.Exit(1)
	}

	_, screenH, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		screenH = 24
	}

	if err := tui.RunEventsBrowser(*run, events, screenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
