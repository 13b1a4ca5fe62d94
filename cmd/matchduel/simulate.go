package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/matchduel/internal/core"
	"github.com/vovakirdan/matchduel/internal/games/match3"
	match3core "github.com/vovakirdan/matchduel/internal/games/match3/core"
	"github.com/vovakirdan/matchduel/internal/platform/cli"
)

var (
	flagSimMoves     int
	flagSimThink     time.Duration
	flagSimSnapshots bool
	flagSimQuiet     bool
	flagSimInputs    []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <mode>",
	Short: "Autoplay a game with the hint finder",
	Long: `Plays the given mode with the greedy hint finder: every move takes the
swap touching the most tiles. In duel mode the enemy clock advances by the
think time before each move.

Scripted inputs given with --input are played first, in order; autoplay
takes over after them. An input is a swap (row,col:row,col), "auto", or
"wait=<duration>" to let the enemy clock run without moving. The final
state is printed as YAML.

Examples:
  matchduel simulate match3 --moves 20
  matchduel simulate match3_duel --seed 7 --think 2s
  matchduel simulate match3 --seed 1 --snapshots
  matchduel simulate match3 --seed 1 --input 1,4:2,4 --input 0,0:0,1
  matchduel simulate match3_duel --input wait=30s --input auto`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 30, "Maximum number of moves")
	simulateCmd.Flags().DurationVar(&flagSimThink, "think", time.Second, "Time passing before each move (duel mode)")
	simulateCmd.Flags().BoolVar(&flagSimSnapshots, "snapshots", false, "Print the board after every cascade half-step")
	simulateCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Only print the final state")
	simulateCmd.Flags().StringArrayVar(&flagSimInputs, "input", nil, "Scripted input: row,col:row,col, auto or wait=<duration> (repeatable)")
}

func runSimulate(cmd *cobra.Command, args []string) {
	s := openSession()
	game := s.startGame(args[0])

	g, ok := game.(*match3.Game)
	if !ok {
		fail("mode %q cannot be simulated", args[0])
	}

	script := make([]core.InputFrame, 0, len(flagSimInputs))
	for _, raw := range flagSimInputs {
		in, err := cli.ParseInput(raw)
		if err != nil {
			fail("%v", err)
		}
		if in.Action != core.ActionWait {
			in = in.After(flagSimThink)
		}
		script = append(script, in)
	}

	for i := 1; i <= flagSimMoves && !g.State().GameOver; i++ {
		in := core.AutoInput().After(flagSimThink)
		if i <= len(script) {
			in = script[i-1]
		}
		res := g.Step(in)
		s.logger.Debug("move played", "n", i, "accepted", res.Accepted, "cleared", res.Cleared, "steps", res.Steps)

		if flagSimQuiet {
			continue
		}
		fmt.Println(cli.Header(fmt.Sprintf("Move %d", i), s.term.Color))
		if len(res.Events) > 0 {
			fmt.Println(strings.Join(res.Events, ", "))
		}
		if flagSimSnapshots {
			for _, snap := range g.LastSnapshots() {
				fmt.Printf("-- step %d %s\n%s\n", snap.Step, snap.Kind, match3core.RenderASCII(snap.Board))
			}
		}
		s.printGame(game)
	}

	out, err := yaml.Marshal(g.Snapshot())
	if err != nil {
		fail("encoding result: %v", err)
	}
	fmt.Println(cli.Header("Result", s.term.Color))
	fmt.Print(string(out))
}
