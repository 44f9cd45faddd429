package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/beltsim/internal/body"
	"github.com/vovakirdan/beltsim/internal/core"
	"github.com/vovakirdan/beltsim/internal/platform/tui"
	"github.com/vovakirdan/beltsim/internal/sim"
)

var (
	flagFPS  int
	flagSeed int64
)

var animateCmd = &cobra.Command{
	Use:   "animate <file>",
	Short: "Replay the simulation in the terminal",
	Long: `Simulate the given asteroid file and replay it as a terminal
animation. Bodies involved in a collision at the current frame's sampled
time are highlighted.

Controls:
  Space      - Pause/resume
  Left/Right - Step frames while paused
  R          - Restart
  Q/Ctrl+C   - Quit

Examples:
  beltsim animate asteroid.txt
  beltsim animate asteroid.txt --fps 20
  beltsim animate asteroid.txt --duration 30 --step 0.5`,
	Args: cobra.ExactArgs(1),
	Run:  runAnimate,
}

func init() {
	animateCmd.Flags().IntVar(&flagFPS, "fps", 0, "Playback frames per second (0 = from config)")
	animateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Star field RNG seed (0 = random based on time)")
}

func runAnimate(cmd *cobra.Command, args []string) {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bodies, err := body.Load(path, body.Options{Strict: cfg.Simulation.StrictIDs})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The event log is computed once; playback only replays it
	events := sim.Simulate(bodies, cfg.Simulation.Duration, cfg.Simulation.TimeStep)

	// Get terminal size before the program starts
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     cfg.Playback.FPS,
		Stars:   cfg.Playback.Stars,
		Seed:    flagSeed,
	}
	if flagFPS > 0 {
		runtime.FPS = flagFPS
	}

	if err := tui.RunPlayback(bodies, events, cfg.Simulation.Duration, cfg.Simulation.TimeStep, runtime); err != nil {
		fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
		os.Exit(1)
	}
}
