package core

// minRun is the shortest line of equal bases that counts as a match.
const minRun = 3

// FindAllMatches returns every maximal run of at least three equal-base
// cells. All rows are scanned left to right first, then all columns top to
// bottom. A cell may appear in one horizontal and one vertical run.
func FindAllMatches(b *Board) []Run {
	var runs []Run

	for r := 0; r < b.rows; r++ {
		c := 0
		for c < b.cols {
			start := b.At(P(r, c))
			end := c + 1
			for end < b.cols && start.SameBase(b.At(P(r, end))) {
				end++
			}
			if end-c >= minRun {
				run := Run{Orientation: Horizontal, Base: start.Base}
				for cc := c; cc < end; cc++ {
					run.Cells = append(run.Cells, P(r, cc))
				}
				runs = append(runs, run)
			}
			c = end
		}
	}

	for c := 0; c < b.cols; c++ {
		r := 0
		for r < b.rows {
			start := b.At(P(r, c))
			end := r + 1
			for end < b.rows && start.SameBase(b.At(P(end, c))) {
				end++
			}
			if end-r >= minRun {
				run := Run{Orientation: Vertical, Base: start.Base}
				for rr := r; rr < end; rr++ {
					run.Cells = append(run.Cells, P(rr, c))
				}
				runs = append(runs, run)
			}
			r = end
		}
	}

	return runs
}

// HasRunAt reports whether the tile at p is part of a horizontal or
// vertical line of at least three equal bases.
func HasRunAt(b *Board, p Pos) bool {
	return lineLength(b, p, 0, 1) >= minRun || lineLength(b, p, 1, 0) >= minRun
}

// lineLength counts equal-base tiles through p along (dr, dc) in both directions.
func lineLength(b *Board, p Pos, dr, dc int) int {
	t := b.At(p)
	if t.IsEmpty() {
		return 0
	}
	n := 1
	for q := P(p.Row-dr, p.Col-dc); t.SameBase(b.At(q)); q = P(q.Row-dr, q.Col-dc) {
		n++
	}
	for q := P(p.Row+dr, p.Col+dc); t.SameBase(b.At(q)); q = P(q.Row+dr, q.Col+dc) {
		n++
	}
	return n
}

// HasAnyRun reports whether the board contains at least one run.
func HasAnyRun(b *Board) bool {
	return len(FindAllMatches(b)) > 0
}

// fillWithoutRuns fills every cell row-major with random normals, re-rolling
// a cell while it completes a run with the neighbours placed before it.
func fillWithoutRuns(b *Board, rng IntNSource, elements int) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			p := P(r, c)
			for {
				b.Set(p, randomTile(rng, elements))
				if !HasRunAt(b, p) {
					break
				}
			}
		}
	}
}
