package core

import (
	"testing"
)

// scriptedRand returns a fixed sequence of values, each reduced modulo n.
type scriptedRand struct {
	vals []int
	pos  int
}

func (s *scriptedRand) IntN(n int) int {
	if s.pos >= len(s.vals) {
		panic("scriptedRand: sequence exhausted")
	}
	v := s.vals[s.pos] % n
	s.pos++
	return v
}

// pattern is an 8x8 board without runs: value(r, c) = (2r + c) % 5 + 1.
const pattern = `
1 2 3 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 2 3 4 5 1 2
2 3 4 5 1 2 3 4
4 5 1 2 3 4 5 1
1 2 3 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 2 3 4 5 1 2`

func newTestEngine(t *testing.T, layout string, rng ...int) (*Engine, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	b := MustParseBoard(layout)
	e, err := New(b.Rows(), b.Cols(), 5, rec,
		WithLayout(b),
		WithRand(&scriptedRand{vals: rng}),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e, rec
}

func assertBoard(t *testing.T, got *Board, layout string) {
	t.Helper()
	expected := MustParseBoard(layout)
	if !got.Equal(expected) {
		t.Errorf("board mismatch:\ngot\n%s\nexpected\n%s", got, expected)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		elements   int
	}{
		{"zero rows", 0, 8, 5},
		{"zero cols", 8, 0, 5},
		{"too few elements", 8, 8, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows, tt.cols, tt.elements, nil)
			if err == nil {
				t.Fatal("New() should fail")
			}
		})
	}
}

func TestNewRejectsMismatchedLayout(t *testing.T) {
	_, err := New(4, 4, 5, nil, WithLayout(MustParseBoard(pattern)))
	if err == nil {
		t.Error("New() should reject a layout of the wrong size")
	}
}

func TestInitialBoardHasNoRuns(t *testing.T) {
	sizes := []struct{ rows, cols, elements int }{
		{8, 8, 5},
		{8, 8, 3},
		{5, 9, 4},
		{12, 6, 7},
	}

	for _, sz := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			e, err := New(sz.rows, sz.cols, sz.elements, nil, WithRand(NewRand(seed)))
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			b := e.Board()
			if HasAnyRun(b) {
				t.Fatalf("%dx%d/%d seed %d: initial board has a run:\n%s",
					sz.rows, sz.cols, sz.elements, seed, b)
			}
			if b.EmptyCount() != 0 {
				t.Fatalf("initial board has %d empty cells", b.EmptyCount())
			}
			for _, p := range b.OccupiedPositions() {
				tile := b.At(p)
				if tile.Kind != KindNormal || tile.Base < 1 || tile.Base > sz.elements {
					t.Fatalf("bad initial tile %+v at %v", tile, p)
				}
			}
		}
	}
}

func TestDeterministicInitialBoard(t *testing.T) {
	e1, _ := New(8, 8, 5, nil, WithRand(NewRand(12345)))
	e2, _ := New(8, 8, 5, nil, WithRand(NewRand(12345)))

	if !e1.Board().Equal(e2.Board()) {
		t.Errorf("same seed should produce same board:\n%s\nvs\n%s", e1.Board(), e2.Board())
	}
}

func TestSwapWithoutMatchIsRolledBack(t *testing.T) {
	e, rec := newTestEngine(t, pattern)
	before := e.Board()

	snaps, ok := e.Swap(P(0, 0), P(0, 1))

	if ok {
		t.Error("Swap() should reject a move that creates no run")
	}
	if snaps != nil {
		t.Errorf("rejected swap returned %d snapshots, expected nil", len(snaps))
	}
	if !e.Board().Equal(before) {
		t.Errorf("board changed after rejected swap:\n%s", e.Board())
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", e.Score())
	}
	if e.Moves() != 0 {
		t.Errorf("Moves() = %d, expected 0", e.Moves())
	}
	if len(rec.Effects) != 0 {
		t.Errorf("rejected swap emitted %d effects", len(rec.Effects))
	}
	if e.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", e.Phase())
	}
}

// layoutRunOfThree completes a horizontal run at (2,2)-(2,4) when
// (1,4) and (2,4) are swapped.
const layoutRunOfThree = `
1 2 3 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 2 2 4 5 1 2
2 3 4 5 1 2 3 4
4 5 1 2 3 4 5 1
1 2 3 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 2 3 4 5 1 2`

func TestSwapRunOfThree(t *testing.T) {
	e, _ := newTestEngine(t, layoutRunOfThree, 2, 3, 4)

	snaps, ok := e.Swap(P(1, 4), P(2, 4))

	if !ok {
		t.Fatal("Swap() should accept the move")
	}
	if len(snaps) != 2 {
		t.Fatalf("len(snaps) = %d, expected 2", len(snaps))
	}
	if e.Score() != 3 {
		t.Errorf("Score() = %d, expected 3", e.Score())
	}

	cleared := snaps[0]
	if cleared.Kind != SnapshotCleared || cleared.Step != 1 {
		t.Errorf("snaps[0] = %v step %d, expected cleared step 1", cleared.Kind, cleared.Step)
	}
	for _, p := range []Pos{P(2, 2), P(2, 3), P(2, 4)} {
		if !cleared.Board.At(p).IsEmpty() {
			t.Errorf("cleared snapshot: %v should be empty", p)
		}
	}
	if cleared.Board.EmptyCount() != 3 {
		t.Errorf("cleared snapshot has %d empty cells, expected 3", cleared.Board.EmptyCount())
	}
	if len(cleared.Board.Specials()) != 0 {
		t.Error("run of three should not spawn a special")
	}

	if snaps[1].Kind != SnapshotRefilled {
		t.Errorf("snaps[1].Kind = %v, expected refilled", snaps[1].Kind)
	}
	assertBoard(t, e.Board(), `
1 2 3 4 5 1 2 3
3 4 3 4 5 3 4 5
5 1 5 1 4 5 1 2
2 3 4 5 1 2 3 4
4 5 1 2 3 4 5 1
1 2 3 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 2 3 4 5 1 2`)
	if !snaps[1].Board.Equal(e.Board()) {
		t.Error("last snapshot should match the final board")
	}
	if HasAnyRun(e.Board()) {
		t.Error("board should have no runs after the move")
	}
}

func TestSwapCascades(t *testing.T) {
	// The first refill lines up three 4s on the top row.
	e, _ := newTestEngine(t, layoutRunOfThree, 3, 3, 3, 2, 3, 4)

	snaps, ok := e.Swap(P(1, 4), P(2, 4))

	if !ok {
		t.Fatal("Swap() should accept the move")
	}
	if len(snaps) != 4 {
		t.Fatalf("len(snaps) = %d, expected 4", len(snaps))
	}
	if Steps(snaps) != 2 {
		t.Errorf("Steps() = %d, expected 2", Steps(snaps))
	}
	wantKinds := []SnapshotKind{SnapshotCleared, SnapshotRefilled, SnapshotCleared, SnapshotRefilled}
	for i, k := range wantKinds {
		if snaps[i].Kind != k {
			t.Errorf("snaps[%d].Kind = %v, expected %v", i, snaps[i].Kind, k)
		}
	}
	if snaps[2].Step != 2 {
		t.Errorf("snaps[2].Step = %d, expected 2", snaps[2].Step)
	}
	for _, p := range []Pos{P(0, 2), P(0, 3), P(0, 4)} {
		if !snaps[2].Board.At(p).IsEmpty() {
			t.Errorf("second cleared snapshot: %v should be empty", p)
		}
	}
	if e.Score() != 6 {
		t.Errorf("Score() = %d, expected 6", e.Score())
	}
	if ClearedCells(snaps) != 6 {
		t.Errorf("ClearedCells() = %d, expected 6", ClearedCells(snaps))
	}
	if HasAnyRun(e.Board()) {
		t.Error("board should have no runs after the cascade")
	}
}

// layoutRunOfFour completes (2,1)-(2,4) with 3s when (1,2) and (2,2) swap.
const layoutRunOfFour = `
1 2 3 4 5 1 2 3
3 4 3 1 2 3 4 5
5 3 2 3 3 5 1 2
2 3 4 5 1 2 3 4
4 5 1 2 3 4 5 1
1 2 3 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 2 3 4 5 1 2`

const afterRunOfFour = `
1 4 3 5 4 1 2 3
3 2 2 4 5 3 4 5
5 4 3* 1 2 5 1 2
2 3 4 5 1 2 3 4
4 5 1 2 3 4 5 1
1 2 3 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 2 3 4 5 1 2`

func TestSwapRunOfFourSpawnsSpecialAtEndpoint(t *testing.T) {
	tests := []struct {
		name string
		a, b Pos
	}{
		{"first endpoint in run", P(2, 2), P(1, 2)},
		{"second endpoint in run", P(1, 2), P(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newTestEngine(t, layoutRunOfFour, 3, 4, 3)

			snaps, ok := e.Swap(tt.a, tt.b)

			if !ok {
				t.Fatal("Swap() should accept the move")
			}
			if len(snaps) != 2 {
				t.Fatalf("len(snaps) = %d, expected 2", len(snaps))
			}

			cleared := snaps[0].Board
			special := cleared.At(P(2, 2))
			if !special.IsSpecial() || special.Base != 3 || special.UID != 1 {
				t.Errorf("tile at (2,2) = %+v, expected special base 3 uid 1", special)
			}
			if mid := cleared.At(P(2, 3)); !mid.IsEmpty() {
				t.Errorf("structural midpoint (2,3) = %+v, expected empty", mid)
			}
			for _, p := range []Pos{P(2, 1), P(2, 3), P(2, 4)} {
				if !cleared.At(p).IsEmpty() {
					t.Errorf("%v should be empty before refill", p)
				}
			}
			if cleared.EmptyCount() != 3 {
				t.Errorf("cleared snapshot has %d empty cells, expected 3", cleared.EmptyCount())
			}
			if e.Score() != 3 {
				t.Errorf("Score() = %d, expected 3", e.Score())
			}
			if len(rec.Effects) != 0 {
				t.Errorf("spawning a special emitted %d effects, expected 0", len(rec.Effects))
			}
			assertBoard(t, e.Board(), afterRunOfFour)
		})
	}
}

func TestLockedSpecialStaysThroughDrop(t *testing.T) {
	e, _ := newTestEngine(t, layoutRunOfFour, 3, 4, 3)

	snaps, ok := e.Swap(P(2, 2), P(1, 2))
	if !ok {
		t.Fatal("Swap() should accept the move")
	}

	spawned := snaps[0].Board.At(P(2, 2))
	after := snaps[1].Board.At(P(2, 2))
	if after != spawned {
		t.Errorf("locked special moved: before drop %+v, after %+v", spawned, after)
	}
	if e.locked.Len() != 0 {
		t.Errorf("locked set has %d cells after the move, expected 0", e.locked.Len())
	}
}

// layoutVerticalFour has 1s at (2,2)-(4,2); swapping (5,2) with (5,3)
// completes a vertical run of four at its bottom cell.
const layoutVerticalFour = `
1 2 3 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 1 3 4 5 1 2
2 3 1 5 1 2 3 4
4 5 1 2 3 4 5 1
1 2 3 1 5 1 2 3
3 4 5 1 2 3 4 5
5 1 2 3 4 5 1 2`

const afterVerticalFour = `
1 2 4 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 4 3 4 5 1 2
2 3 3 5 1 2 3 4
4 5 5 2 3 4 5 1
1 2 1* 3 5 1 2 3
3 4 5 1 2 3 4 5
5 1 2 3 4 5 1 2`

func TestLockedSpecialHoldsWhileColumnAboveFalls(t *testing.T) {
	e, _ := newTestEngine(t, layoutVerticalFour, 3, 4, 3)

	snaps, ok := e.Swap(P(5, 2), P(5, 3))
	if !ok {
		t.Fatal("Swap() should accept the move")
	}
	if len(snaps) != 2 {
		t.Fatalf("len(snaps) = %d, expected 2", len(snaps))
	}

	cleared := snaps[0].Board
	for r := 2; r <= 4; r++ {
		if !cleared.At(P(r, 2)).IsEmpty() {
			t.Errorf("(%d,2) should be empty before the drop", r)
		}
	}
	spawned := cleared.At(P(5, 2))
	if !spawned.IsSpecial() || spawned.Base != 1 || spawned.UID != 1 {
		t.Fatalf("tile at (5,2) = %+v, expected special base 1 uid 1", spawned)
	}

	refilled := snaps[1].Board
	if got := refilled.At(P(5, 2)); got != spawned {
		t.Errorf("locked special moved: before drop %+v, after %+v", spawned, got)
	}
	if got := refilled.At(P(4, 2)); got != Normal(5) {
		t.Errorf("tile at (4,2) = %+v, expected the 5 from row 1", got)
	}
	if e.locked.Len() != 0 {
		t.Errorf("locked set has %d cells after the move, expected 0", e.locked.Len())
	}
	assertBoard(t, e.Board(), afterVerticalFour)
}

// layoutDragonSlave holds a row-clearing special at (2,2); swapping (2,3)
// with (1,3) puts it in a run of 1s.
const layoutDragonSlave = `
1 2 3 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 1* 3 4 5 1 2
2 3 4 5 1 2 3 4
4 5 1 2 3 4 5 1
1 2 3 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 2 3 4 5 1 2`

func TestSwapTriggersRowClear(t *testing.T) {
	e, rec := newTestEngine(t, layoutDragonSlave, 0, 1, 0, 1, 0, 1, 0, 1)

	snaps, ok := e.Swap(P(2, 3), P(1, 3))

	if !ok {
		t.Fatal("Swap() should accept the move")
	}
	if len(snaps) != 2 {
		t.Fatalf("len(snaps) = %d, expected 2", len(snaps))
	}
	for c := 0; c < 8; c++ {
		if !snaps[0].Board.At(P(2, c)).IsEmpty() {
			t.Errorf("row 2 col %d should be empty before refill", c)
		}
	}
	if snaps[0].Board.EmptyCount() != 8 {
		t.Errorf("cleared snapshot has %d empty cells, expected 8", snaps[0].Board.EmptyCount())
	}
	if e.Score() != 8 {
		t.Errorf("Score() = %d, expected 8", e.Score())
	}

	if len(rec.Effects) != 1 {
		t.Fatalf("recorded %d effects, expected 1: %v", len(rec.Effects), rec.Effects)
	}
	if rec.Effects[0] != (EnemyDamage{Amount: 15}) {
		t.Errorf("effect = %v, expected damage(15)", rec.Effects[0])
	}

	assertBoard(t, e.Board(), `
1 2 1 2 1 2 1 2
1 2 3 4 5 1 2 3
3 4 5 3 2 3 4 5
2 3 4 5 1 2 3 4
4 5 1 2 3 4 5 1
1 2 3 4 5 1 2 3
3 4 5 1 2 3 4 5
5 1 2 3 4 5 1 2`)
}

func TestSwapOutOfBoundsPanics(t *testing.T) {
	e, _ := newTestEngine(t, pattern)

	defer func() {
		if recover() == nil {
			t.Error("Swap() with an off-board position should panic")
		}
	}()
	e.Swap(P(7, 7), P(8, 7))
}

func TestSwapNonAdjacentPanics(t *testing.T) {
	e, _ := newTestEngine(t, pattern)

	defer func() {
		if recover() == nil {
			t.Error("Swap() with non-adjacent cells should panic")
		}
	}()
	e.Swap(P(0, 0), P(2, 0))
}

type phaseSink struct {
	NopSink
	e      *Engine
	phases []Phase
}

func (s *phaseSink) OnEnemyDamage(int) {
	s.phases = append(s.phases, s.e.Phase())
}

func TestSinkObservesResolvingPhase(t *testing.T) {
	sink := &phaseSink{}
	b := MustParseBoard(layoutDragonSlave)
	e, err := New(8, 8, 5, sink, WithLayout(b), WithRand(&scriptedRand{vals: []int{0, 1, 0, 1, 0, 1, 0, 1}}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	sink.e = e

	e.Swap(P(2, 3), P(1, 3))

	if len(sink.phases) != 1 || sink.phases[0] != PhaseResolving {
		t.Errorf("sink saw phases %v, expected [resolving]", sink.phases)
	}
	if e.Phase() != PhaseIdle {
		t.Errorf("Phase() after swap = %v, expected idle", e.Phase())
	}
}

func TestAutoplayKeepsInvariants(t *testing.T) {
	e, err := New(8, 8, 5, &Recorder{}, WithRand(NewRand(7)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	lastScore := 0
	lastUID := uint64(0)
	for i := 0; i < 50; i++ {
		m, ok := BestMove(e.Board())
		if !ok {
			break
		}
		snaps, accepted := e.Swap(m.A, m.B)
		if !accepted {
			t.Fatalf("move %d: hinted swap %v <-> %v was rejected", i, m.A, m.B)
		}
		if len(snaps) < 2 || len(snaps)%2 != 0 {
			t.Fatalf("move %d: got %d snapshots", i, len(snaps))
		}

		b := e.Board()
		if HasAnyRun(b) {
			t.Fatalf("move %d: board has runs after cascade:\n%s", i, b)
		}
		if b.EmptyCount() != 0 {
			t.Fatalf("move %d: board has empty cells after cascade", i)
		}
		if e.Score() <= lastScore {
			t.Fatalf("move %d: score did not increase (%d -> %d)", i, lastScore, e.Score())
		}
		lastScore = e.Score()
		if e.locked.Len() != 0 {
			t.Fatalf("move %d: lock set not cleared", i)
		}

		for _, p := range b.Specials() {
			if uid := b.At(p).UID; uid >= e.nextUID {
				t.Fatalf("special uid %d not below next uid %d", uid, e.nextUID)
			}
		}
		if e.nextUID < lastUID {
			t.Fatalf("uid counter went backwards")
		}
		lastUID = e.nextUID
	}
}
