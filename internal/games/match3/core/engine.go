package core

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is returned by New when the engine cannot be built.
var ErrInvalidConfig = errors.New("match3: invalid engine config")

// MinElements is the smallest tile alphabet the initializer can work with.
const MinElements = 3

// Phase is the position of the engine in the move-resolution state machine.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSwapped
	PhaseDetecting
	PhaseResolving
	PhaseDropping
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSwapped:
		return "swapped"
	case PhaseDetecting:
		return "detecting"
	case PhaseResolving:
		return "resolving"
	case PhaseDropping:
		return "dropping"
	default:
		return "unknown"
	}
}

// Engine owns a board and resolves player moves on it.
// It is not safe for concurrent use.
type Engine struct {
	board    *Board
	elements int
	rng      IntNSource
	sink     EffectSink
	logger   *log.Logger

	score   int
	nextUID uint64
	phase   Phase
	moves   int

	lastSwap    [2]Pos
	hasLastSwap bool
	locked      *Mask
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for generation, refills and
// random-target specials.
func WithRand(rng IntNSource) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLogger sets the logger for cascade tracing and sink failures.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithLayout starts the engine from a fixed board instead of a generated one.
// The board is copied.
func WithLayout(b *Board) Option {
	return func(e *Engine) {
		if b != nil {
			e.board = b.Clone()
		}
	}
}

// New creates an engine with a rows x cols board drawn from elements tile
// kinds. A nil sink discards effects.
func New(rows, cols, elements int, sink EffectSink, opts ...Option) (*Engine, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, rows, cols)
	}
	if elements < MinElements {
		return nil, fmt.Errorf("%w: elements %d < %d", ErrInvalidConfig, elements, MinElements)
	}
	if sink == nil {
		sink = NopSink{}
	}

	e := &Engine{
		elements: elements,
		sink:     sink,
		nextUID:  1,
		locked:   NewMask(rows, cols),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRand(time.Now().UnixNano())
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	if e.board == nil {
		e.board = NewBoard(rows, cols)
		fillWithoutRuns(e.board, e.rng, elements)
	} else {
		if e.board.rows != rows || e.board.cols != cols {
			return nil, fmt.Errorf("%w: layout is %dx%d, expected %dx%d",
				ErrInvalidConfig, e.board.rows, e.board.cols, rows, cols)
		}
		FillBlanks(e.board, e.rng, elements)
		e.nextUID = e.board.maxUID() + 1
	}

	return e, nil
}

// Board returns a copy of the current board.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// Score returns the number of cells cleared so far.
func (e *Engine) Score() int {
	return e.score
}

// Phase returns the current state-machine phase. Outside of Swap it is
// always PhaseIdle; effect sinks observe PhaseResolving.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Moves returns the number of accepted swaps.
func (e *Engine) Moves() int {
	return e.moves
}

// Hints lists the swaps that would currently produce a match.
func (e *Engine) Hints() []Move {
	return FindMoves(e.board)
}

// Swap exchanges two adjacent cells and resolves the move with all its
// cascades. It returns the ordered snapshots (post-clear, post-refill per
// cascade step) and true, or nil and false when the swap creates no run, in
// which case the board is left exactly as it was.
//
// Both positions must be on the board and adjacent; anything else panics.
func (e *Engine) Swap(a, b Pos) ([]Snapshot, bool) {
	e.board.mustInBounds(a)
	e.board.mustInBounds(b)
	if !a.Adjacent(b) {
		panic(fmt.Sprintf("match3: swap %v <-> %v: cells are not adjacent", a, b))
	}

	e.lastSwap = [2]Pos{a, b}
	e.hasLastSwap = true

	e.phase = PhaseSwapped
	e.board.swap(a, b)
	if !HasRunAt(e.board, a) && !HasRunAt(e.board, b) {
		e.board.swap(a, b)
		e.phase = PhaseIdle
		e.logger.Debug("swap rejected", "a", a, "b", b)
		return nil, false
	}

	e.moves++
	snaps := e.cascade()
	e.phase = PhaseIdle
	return snaps, true
}

// cascade runs detect/resolve/drop/refill until a pass removes nothing.
func (e *Engine) cascade() []Snapshot {
	var snaps []Snapshot
	for step := 1; ; step++ {
		e.phase = PhaseDetecting
		runs := FindAllMatches(e.board)

		e.phase = PhaseResolving
		res := e.resolve(runs)
		if res.Removed == 0 {
			break
		}
		e.score += res.Removed
		snaps = append(snaps, Snapshot{Step: step, Kind: SnapshotCleared, Board: e.board.Clone()})

		e.phase = PhaseDropping
		Drop(e.board, e.locked)
		FillBlanks(e.board, e.rng, e.elements)
		snaps = append(snaps, Snapshot{Step: step, Kind: SnapshotRefilled, Board: e.board.Clone()})

		e.logger.Debug("cascade step",
			"step", step,
			"runs", len(runs),
			"removed", res.Removed,
			"triggers", len(res.Triggers),
			"spawned", len(res.Spawned),
			"score", e.score,
		)
	}
	return snaps
}
