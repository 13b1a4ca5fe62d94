// matchduel runs the match-three board engine from the command line.
//
// Usage:
//
//	matchduel list               - List available game modes
//	matchduel board              - Print a freshly generated board
//	matchduel rules              - Show what each special tile does
//	matchduel simulate <mode>    - Autoplay a game with the hint finder
//	matchduel config             - Print or write the effective config
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - Override the configured log level
//	--no-color           - Disable colored output
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/matchduel/internal/games/match3"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagNoColor  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matchduel",
	Short: "Match Duel - a match-three board engine in your terminal",
	Long: `Match Duel drives a match-three board: swap adjacent tiles to line up
three or more of a kind, build specials from longer runs and, in duel mode,
use them to beat a timed enemy.

Available commands:
  list      - Show all game modes
  board     - Print a freshly generated board
  rules     - Show what each special tile does
  simulate  - Autoplay a game with the hint finder
  config    - Print or write the effective config

Examples:
  matchduel list
  matchduel board --seed 42
  matchduel simulate match3_duel --moves 50 --seed 7
  matchduel config --write ~/.matchduel/configs/match.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
