package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matchduel/internal/games/match3"
	"github.com/vovakirdan/matchduel/internal/games/match3/core"
)

var (
	flagBoardASCII bool
	flagBoardMode  string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a freshly generated board",
	Long: `Generates the initial board from the config (or its fixed layout) and
prints it together with the available moves.

Examples:
  matchduel board
  matchduel board --seed 42 --ascii
  matchduel board --mode match3_duel`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().BoolVar(&flagBoardASCII, "ascii", false, "Print the board in its text layout format")
	boardCmd.Flags().StringVar(&flagBoardMode, "mode", "match3", "Mode used to build the board")
}

func runBoard(cmd *cobra.Command, args []string) {
	s := openSession()
	game := s.startGame(flagBoardMode)

	g, ok := game.(*match3.Game)
	if !ok {
		fail("mode %q has no match-three board", flagBoardMode)
	}

	if flagBoardASCII {
		fmt.Println(core.RenderASCII(g.Board()))
	} else {
		s.printGame(game)
	}

	moves := g.Hints()
	fmt.Printf("\n%d moves available\n", len(moves))
	if best, ok := core.BestMove(g.Board()); ok {
		fmt.Printf("Best: %v <-> %v (touches %d tiles)\n", best.A, best.B, best.Touch)
	}
}
