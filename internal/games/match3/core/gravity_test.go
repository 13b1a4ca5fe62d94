package core

import "testing"

func TestDrop(t *testing.T) {
	tests := []struct {
		name   string
		before string
		locked []Pos
		after  string
	}{
		{
			name:   "full column unchanged",
			before: "1\n2\n3",
			after:  "1\n2\n3",
		},
		{
			name:   "tiles fall into gap",
			before: "1\n2\n.\n3",
			after:  ".\n1\n2\n3",
		},
		{
			name:   "several gaps",
			before: "1\n.\n2\n.\n.",
			after:  ".\n.\n.\n1\n2",
		},
		{
			name:   "special keeps identity",
			before: "1\n2*\n3\n.",
			after:  ".\n1\n2*\n3",
		},
		{
			name:   "locked cell stays and others pass it",
			before: "1\n2*\n3\n.",
			locked: []Pos{P(1, 0)},
			after:  ".\n2*\n1\n3",
		},
		{
			name:   "columns are independent",
			before: "1 2\n. 3\n4 .",
			after:  ". .\n1 2\n4 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustParseBoard(tt.before)
			occupied := b.OccupiedCount()
			var locked *Mask
			if tt.locked != nil {
				locked = NewMask(b.Rows(), b.Cols())
				for _, p := range tt.locked {
					locked.Add(p)
				}
			}

			Drop(b, locked)

			expected := MustParseBoard(tt.after)
			if !b.Equal(expected) {
				t.Errorf("after Drop:\n%s\nexpected\n%s", b, expected)
			}
			if b.OccupiedCount() != occupied {
				t.Errorf("OccupiedCount() = %d, expected %d", b.OccupiedCount(), occupied)
			}
			if locked != nil && locked.Len() != 0 {
				t.Error("Drop should clear the lock set")
			}
		})
	}
}

func TestFillBlanksFillsEveryEmptyCell(t *testing.T) {
	b := MustParseBoard(`
1 . 3
. . 2
4 5 .`)
	rng := NewRand(3)

	n := FillBlanks(b, rng, 5)

	if n != 4 {
		t.Errorf("FillBlanks() = %d, expected 4", n)
	}
	if b.EmptyCount() != 0 {
		t.Errorf("EmptyCount() = %d after fill, expected 0", b.EmptyCount())
	}
	for _, p := range b.OccupiedPositions() {
		tile := b.At(p)
		if tile.Base < 1 || tile.Base > 5 {
			t.Errorf("tile %v at %v outside 1..5", tile, p)
		}
	}
	if got := b.At(P(0, 0)); got != Normal(1) {
		t.Errorf("existing tile changed to %v", got)
	}
}

func TestDropThenFillConservesCells(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := NewRand(seed)
		b := NewBoard(8, 8)
		fillWithoutRuns(b, rng, 5)
		for _, p := range []Pos{P(0, 0), P(3, 3), P(3, 4), P(7, 7), P(5, 1)} {
			b.Set(p, Empty())
		}

		Drop(b, nil)
		FillBlanks(b, rng, 5)

		if b.OccupiedCount() != 64 {
			t.Fatalf("seed %d: OccupiedCount() = %d, expected 64", seed, b.OccupiedCount())
		}
	}
}
