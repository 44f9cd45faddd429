package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beltsim/internal/body"
	"github.com/vovakirdan/beltsim/internal/report"
	"github.com/vovakirdan/beltsim/internal/sim"
	"github.com/vovakirdan/beltsim/internal/storage"
)

var (
	flagOut  string
	flagSave bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Simulate and write the collision report",
	Long: `Load asteroid data from the given file, simulate motion over the
configured time horizon, print every detected collision, and write the
fixed-width collision report.

The input file holds one asteroid per line, whitespace-separated:
either "x y radius vx vy" (IDs auto-assigned in file order) or
"id x y radius vx vy". A header line is detected and skipped.

Examples:
  beltsim run asteroid.txt
  beltsim run asteroid.txt --out results/collisions.txt
  beltsim run asteroid.txt --duration 30 --step 0.5
  beltsim run asteroid.txt --save`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagOut, "out", "", "Report file path (default from config)")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Archive the run in the database")
}

func runRun(cmd *cobra.Command, args []string) {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loading asteroid data from %s...\n", path)
	bodies, err := body.Load(path, body.Options{Strict: cfg.Simulation.StrictIDs})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d asteroids.\n", len(bodies))

	fmt.Println("Simulating asteroid movement and detecting collisions...")
	events := sim.Simulate(bodies, cfg.Simulation.Duration, cfg.Simulation.TimeStep)
	fmt.Printf("\nDetected %d collisions within %g seconds.\n", len(events), cfg.Simulation.Duration)

	outPath := flagOut
	if outPath == "" {
		outPath = cfg.Output.Report
	}
	if err := report.WriteFile(outPath, events); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Collision data successfully written to %s\n", outPath)

	fmt.Println("\nAll detected collisions:")
	report.WriteListing(os.Stdout, events)

	if flagSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening run archive: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		runID, err := store.SaveRun(path, cfg.Simulation.Duration, cfg.Simulation.TimeStep, len(bodies), events)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error archiving run: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nRun archived with ID %d. Browse with 'beltsim events %d'.\n", runID, runID)
	}
}
