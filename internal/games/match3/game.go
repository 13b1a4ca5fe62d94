// Package match3 wires the board engine into the platform as two game
// modes: a classic score-attack board and a timed duel against an enemy.
package match3

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/matchduel/internal/core"
	"github.com/vovakirdan/matchduel/internal/games/match3/core"
	"github.com/vovakirdan/matchduel/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeDuel    Mode = "duel"
)

// Game implements registry.Game on top of the match-three engine.
type Game struct {
	mode   Mode
	logger *log.Logger

	engine   *core.Engine
	recorder *core.Recorder
	duel     *Duel

	lastSnaps []core.Snapshot
	lastMove  core.Move
	hasMove   bool

	gameOver bool
	outcome  platformcore.Outcome
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewDuelGame creates a duel mode game.
func NewDuelGame() *Game {
	return &Game{mode: ModeDuel}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_duel", func() registry.Game {
		return NewDuelGame()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeDuel {
		return "match3_duel"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDuel {
		return "Match Three Duel"
	}
	return "Match Three"
}

// Description returns a one-line summary of the mode.
func (g *Game) Description() string {
	if g.mode == ModeDuel {
		return "Clear tiles to hurt a timed enemy before it wears you down"
	}
	return "Clear as many tiles as possible until no move is left"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset builds a new board (and fight, in duel mode) from cfg. A zero
// Elements or Duel takes the platform default.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) error {
	defaults := platformcore.DefaultConfig()
	if cfg.Elements == 0 {
		cfg.Elements = defaults.Elements
	}
	if cfg.Duel == (platformcore.DuelSettings{}) {
		cfg.Duel = defaults.Duel
	}

	g.logger = cfg.Logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.recorder = &core.Recorder{}
	g.duel = nil
	if g.mode == ModeDuel {
		g.duel = NewDuel(cfg.Duel, g.logger.WithPrefix("duel"))
		g.recorder.Next = g.duel
	}

	opts := []core.Option{core.WithLogger(g.logger.WithPrefix("engine"))}
	if cfg.Seed != 0 {
		opts = append(opts, core.WithRand(core.NewRand(cfg.Seed)))
	}

	rows, cols := cfg.Rows, cfg.Cols
	if cfg.Layout != "" {
		layout, err := core.ParseBoard(cfg.Layout)
		if err != nil {
			return fmt.Errorf("match3: layout: %w", err)
		}
		if rows == 0 && cols == 0 {
			rows, cols = layout.Rows(), layout.Cols()
		}
		if core.HasAnyRun(layout) {
			g.logger.Warn("layout starts with runs; the first accepted swap clears them")
		}
		opts = append(opts, core.WithLayout(layout))
	}

	engine, err := core.New(rows, cols, cfg.Elements, g.recorder, opts...)
	if err != nil {
		return fmt.Errorf("match3: %w", err)
	}
	g.engine = engine
	g.lastSnaps = nil
	g.hasMove = false
	g.gameOver = false
	g.outcome = platformcore.OutcomeNone

	g.checkEnd()
	g.logger.Debug("game reset", "mode", g.mode, "rows", rows, "cols", cols, "elements", cfg.Elements)
	return nil
}

// Step applies one input frame: time passes first, then the swap (if any)
// is resolved.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	var res platformcore.StepResult
	if g.engine == nil || g.gameOver {
		res.State = g.State()
		return res
	}
	g.recorder.Reset()

	if g.duel != nil && in.Elapsed > 0 {
		before := g.duel.Attacks()
		g.duel.Advance(in.Elapsed)
		if n := g.duel.Attacks() - before; n > 0 {
			res.Events = append(res.Events, fmt.Sprintf("enemy attack x%d", n))
		}
		if g.checkEnd() {
			res.State = g.State()
			return res
		}
	}

	a, b, ok := g.pickSwap(in, &res)
	if ok {
		g.applySwap(a, b, &res)
	}

	g.checkEnd()
	res.State = g.State()
	return res
}

func (g *Game) pickSwap(in platformcore.InputFrame, res *platformcore.StepResult) (core.Pos, core.Pos, bool) {
	switch in.Action {
	case platformcore.ActionSwap:
		board := g.engine.Board()
		bounds := platformcore.NewRect(0, 0, board.Cols(), board.Rows())
		a, b := toPos(in.A), toPos(in.B)
		if !bounds.Contains(in.A.Col, in.A.Row) || !bounds.Contains(in.B.Col, in.B.Row) || !in.A.Adjacent(in.B) {
			res.Events = append(res.Events, fmt.Sprintf("invalid swap %v <-> %v", a, b))
			return a, b, false
		}
		return a, b, true
	case platformcore.ActionAuto:
		m, found := core.BestMove(g.engine.Board())
		if !found {
			return core.Pos{}, core.Pos{}, false
		}
		return m.A, m.B, true
	default:
		return core.Pos{}, core.Pos{}, false
	}
}

func (g *Game) applySwap(a, b core.Pos, res *platformcore.StepResult) {
	snaps, accepted := g.engine.Swap(a, b)
	res.Accepted = accepted
	if !accepted {
		res.Events = append(res.Events, "no match")
		return
	}

	g.lastSnaps = snaps
	g.lastMove = core.Move{A: a, B: b}
	g.hasMove = true
	res.Steps = core.Steps(snaps)
	res.Cleared = core.ClearedCells(snaps)
	for _, eff := range g.recorder.Effects {
		res.Events = append(res.Events, fmt.Sprint(eff))
	}

	if g.duel != nil {
		damage, healed := g.duel.ApplyMove(snaps)
		if healed > 0 {
			res.Events = append(res.Events, fmt.Sprintf("lifesteal heal(%d)", healed))
		}
		if damage > 0 {
			res.Events = append(res.Events, fmt.Sprintf("move damage(%d)", damage))
		}
	}
}

// checkEnd updates the game-over flag and reports whether the game ended.
func (g *Game) checkEnd() bool {
	if g.gameOver {
		return true
	}
	if g.duel != nil && g.duel.Over() {
		g.outcome = platformcore.OutcomeDefeat
		if g.duel.Winner() == SidePlayer {
			g.outcome = platformcore.OutcomeVictory
		}
	} else if !core.HasMoves(g.engine.Board()) {
		g.outcome = platformcore.OutcomeDeadlock
	}
	g.gameOver = g.outcome != platformcore.OutcomeNone
	if g.gameOver {
		g.logger.Info("game over", "mode", g.mode, "outcome", g.outcome, "score", g.engine.Score())
	}
	return g.gameOver
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.engine == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.engine.Score(),
		Moves:    g.engine.Moves(),
		GameOver: g.gameOver,
		Outcome:  g.outcome,
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() *core.Board {
	if g.engine == nil {
		return nil
	}
	return g.engine.Board()
}

// Hints lists the swaps that currently produce a match.
func (g *Game) Hints() []core.Move {
	if g.engine == nil {
		return nil
	}
	return g.engine.Hints()
}

// Duel returns the fight of a duel mode game, or nil.
func (g *Game) Duel() *Duel {
	return g.duel
}

// LastSnapshots returns the snapshots of the last accepted swap.
func (g *Game) LastSnapshots() []core.Snapshot {
	return g.lastSnaps
}

func toPos(p platformcore.Point) core.Pos {
	return core.P(p.Row, p.Col)
}
