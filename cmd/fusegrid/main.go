// fusegrid is a terminal tile-merging puzzle game with power-ups.
//
// Usage:
//
//	fusegrid play            - Play a game
//	fusegrid modes           - List available game modes
//	fusegrid serve           - Start SSH server for remote play
//	fusegrid scores [mode]   - Show high scores
//	fusegrid stats           - Show aggregated play statistics
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.fusegrid/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fusegrid",
	Short: "Fusegrid - tile-merging puzzle with power-ups, in your terminal",
	Long: `Fusegrid is a terminal puzzle game: slide tiles, merge equal values,
and reach the target tile before the board locks up. A limited stock of
power-ups (divider, doubler, swapper, undo) can dig you out of trouble.

Available commands:
  play     - Start a game
  modes    - Show all game modes
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View aggregated play statistics

Examples:
  fusegrid play
  fusegrid play --grid 5 --difficulty hard
  fusegrid play --mode endless
  fusegrid serve --ssh :2222
  fusegrid scores classic
  fusegrid stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fusegrid/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
