package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fusegrid/fusegrid/internal/game"
	"github.com/fusegrid/fusegrid/internal/platform/tui"
	"github.com/fusegrid/fusegrid/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display high scores. With a mode argument the top 10 are printed
as plain text; without one an interactive scoreboard opens.

Examples:
  fusegrid scores
  fusegrid scores classic
  fusegrid scores endless`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoreboard()
		return
	}
	mode := args[0]

	if !game.ModeExists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'fusegrid modes' to see available modes.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.ModeTitle(mode))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'fusegrid play --mode %s' to set the first high score!\n", mode)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-7s  %s\n", "Rank", "Score", "Max Tile", "Grid", "Diff", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-7s  %s\n", "----", "-----", "--------", "----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		grid := fmt.Sprintf("%dx%d", entry.GridSize, entry.GridSize)
		fmt.Printf("  %-4d  %-10d  %-8d  %-5s  %-7s  %s\n",
			i+1, entry.Score, entry.MaxTile, grid, entry.Difficulty, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(mode)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// runScoreboard opens the interactive scoreboard browser.
func runScoreboard() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}
