package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fusegrid/fusegrid/internal/config"
	"github.com/fusegrid/fusegrid/internal/game"
	"github.com/fusegrid/fusegrid/internal/platform/tui"
	"github.com/fusegrid/fusegrid/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagGrid       int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a fusegrid game in the terminal.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  1                - Divider (halve a tile)
  2                - Doubler (double a tile)
  3                - Swapper (exchange two tiles)
  U                - Undo last move
  Enter            - Confirm power-up target
  Esc              - Cancel power-up targeting
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty selects the power-up budget: easy gives the most uses,
hard the fewest. The spawn odds themselves adapt to how well you
are doing, not to the preset.

Examples:
  fusegrid play
  fusegrid play --grid 5
  fusegrid play --difficulty hard
  fusegrid play --mode endless
  fusegrid play --seed 12345
  fusegrid play --config ./my-fusegrid.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().StringVar(&flagMode, "mode", game.ModeClassic, "Game mode: classic, endless")
	playCmd.Flags().IntVar(&flagGrid, "grid", 0, "Grid size 4-6 (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !game.ModeExists(flagMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagMode)
		fmt.Fprintln(os.Stderr, "Run 'fusegrid modes' to see available modes.")
		os.Exit(1)
	}

	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagGrid != 0 {
		cfg.Board.Size = flagGrid
		cfg.Normalize()
	}

	// Get terminal size, fall back to a typical window
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	session, err := game.NewMode(flagMode, game.Options{
		Config:     cfg,
		Difficulty: difficulty,
		Seed:       flagSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(session, store, flagMode, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
