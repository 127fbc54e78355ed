package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fusegrid/fusegrid/internal/game"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all game modes",
	Long:  `Shows all registered game modes.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	modes := game.Modes()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'fusegrid play --mode <id>' to play a mode.")
}
