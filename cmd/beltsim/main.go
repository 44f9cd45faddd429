// beltsim simulates straight-line motion of circular asteroids and reports
// every pairwise overlap at each sampled instant.
//
// Usage:
//
//	beltsim run <file>       - Run a simulation and write the collision report
//	beltsim animate <file>   - Replay a simulation in the terminal
//	beltsim runs             - List archived runs
//	beltsim events <run-id>  - Browse an archived run's collisions
//	beltsim serve            - Start SSH server for remote replay
//
// Global flags:
//
//	--config <path>   - Custom config YAML
//	--db <path>       - Run archive database (default: ~/.beltsim/runs.db)
//	--duration <s>    - Simulated time horizon (overrides config)
//	--step <s>        - Sampling interval (overrides config)
//	--strict          - Reject duplicate body IDs in input files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beltsim/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagDuration float64
	flagStep     float64
	flagStrict   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beltsim",
	Short: "Asteroid belt collision simulator",
	Long: `beltsim loads a set of circular asteroids from a text file, simulates
their straight-line motion over a fixed time horizon, and reports every
pairwise overlap at each sampled instant.

Available commands:
  run      - Simulate and write the collision report
  animate  - Replay the simulation in the terminal
  runs     - List archived simulation runs
  events   - Browse an archived run's collisions
  serve    - Start SSH server for remote replay

Examples:
  beltsim run asteroid.txt
  beltsim run asteroid.txt --duration 30 --step 0.5 --save
  beltsim animate asteroid.txt
  beltsim serve --data asteroid.txt --ssh :2222
  beltsim events 3`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.beltsim/runs.db", "Path to run archive database")
	rootCmd.PersistentFlags().Float64Var(&flagDuration, "duration", 0, "Simulated time horizon in seconds (0 = from config)")
	rootCmd.PersistentFlags().Float64Var(&flagStep, "step", 0, "Sampling interval in seconds (0 = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Reject duplicate body IDs in input files")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(animateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the YAML config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDuration > 0 {
		cfg.Simulation.Duration = flagDuration
	}
	if flagStep > 0 {
		cfg.Simulation.TimeStep = flagStep
	}
	if flagStrict {
		cfg.Simulation.StrictIDs = true
	}

	return cfg, nil
}
