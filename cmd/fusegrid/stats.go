package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fusegrid/fusegrid/internal/game"
	"github.com/fusegrid/fusegrid/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated play statistics",
	Long: `Display per-mode statistics: games played, wins, best score,
best tile, and average score.

Examples:
  fusegrid stats`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllModeStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fusegrid play' to record your first game.")
		return
	}

	fmt.Println("Play statistics:")
	fmt.Println()
	fmt.Printf("  %-18s  %-6s  %-5s  %-10s  %-9s  %-10s  %s\n",
		"Mode", "Games", "Wins", "Best", "Best Tile", "Avg Score", "Last Played")
	fmt.Printf("  %-18s  %-6s  %-5s  %-10s  %-9s  %-10s  %s\n",
		"----", "-----", "----", "----", "---------", "---------", "-----------")

	// Show registered modes first, in registry order
	seen := make(map[string]bool)
	for _, m := range game.Modes() {
		if s, ok := all[m.ID]; ok {
			printModeStats(m.Title, s)
			seen[m.ID] = true
		}
	}
	// Then anything recorded under a mode no longer registered
	for mode, s := range all {
		if !seen[mode] {
			printModeStats(mode, s)
		}
	}
}

func printModeStats(title string, s *storage.ModeStats) {
	lastPlayed := "-"
	if !s.LastPlayed.IsZero() {
		lastPlayed = s.LastPlayed.Format("2006-01-02 15:04")
	}
	fmt.Printf("  %-18s  %-6d  %-5d  %-10d  %-9d  %-10.1f  %s\n",
		title, s.GamesCount, s.Wins, s.HighScore, s.BestTile, s.AvgScore, lastPlayed)
}
