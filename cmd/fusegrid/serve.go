package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fusegrid/fusegrid/internal/config"
	"github.com/fusegrid/fusegrid/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagSSHDBPath     string
	flagIdleTimeout   int
	flagServeMode     string
	flagServeDiff     string
	flagServeConfig   string
	flagServeGridSize int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fusegrid SSH server",
	Long: `Start an SSH server that lets users connect and play fusegrid.

Each SSH connection gets its own game sized to the client terminal.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.fusegrid/host_key

Examples:
  fusegrid serve                           # Listen on :23234 with auto-generated key
  fusegrid serve --ssh :2222               # Listen on port 2222
  fusegrid serve --mode endless            # Serve endless games
  fusegrid serve --host-key ./my_host_key  # Use specific host key
  fusegrid serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.fusegrid/scores.db", "Path to scores database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", "classic", "Game mode served to clients")
	serveCmd.Flags().StringVar(&flagServeDiff, "difficulty", "", "Difficulty preset served to clients")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().IntVar(&flagServeGridSize, "grid", 0, "Grid size 4-6 (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	difficulty, err := config.ParseDifficulty(flagServeDiff)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagServeGridSize != 0 {
		gameCfg.Board.Size = flagServeGridSize
		gameCfg.Normalize()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        gameCfg,
		Mode:        flagServeMode,
		Difficulty:  difficulty,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting fusegrid SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
