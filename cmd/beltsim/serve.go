package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beltsim/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeData   string
	flagServeFPS    int
	flagServeStars  int
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the collision replay over SSH",
	Long: `Start an SSH server that replays the simulation for connecting users.

The data file is loaded and the simulation computed once at startup; every
session gets its own playback of the same collision log, sized to its
terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.beltsim/host_key

Examples:
  beltsim serve --data asteroids.txt          # Listen on :23235
  beltsim serve --data asteroids.txt --ssh :2222
  beltsim serve --data asteroids.txt --duration 20 --step 0.5

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeData, "data", "", "Path to the asteroid data file (required)")
	serveCmd.Flags().IntVar(&flagServeFPS, "fps", 0, "Playback frames per second (0 = config default)")
	serveCmd.Flags().IntVar(&flagServeStars, "stars", 0, "Background star count (0 = config default)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.MarkFlagRequired("data")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DataPath = flagServeData
	srvCfg.Duration = cfg.Simulation.Duration
	srvCfg.TimeStep = cfg.Simulation.TimeStep
	srvCfg.Strict = cfg.Simulation.StrictIDs
	srvCfg.FPS = cfg.Playback.FPS
	srvCfg.Stars = cfg.Playback.Stars
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	if flagServeFPS > 0 {
		srvCfg.FPS = flagServeFPS
	}
	if flagServeStars > 0 {
		srvCfg.Stars = flagServeStars
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting beltsim SSH server on %s\n", srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
