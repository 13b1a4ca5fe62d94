package core

// Move is a candidate swap and the number of tiles it would put into runs.
type Move struct {
	A, B  Pos
	Touch int
}

// FindMoves lists every adjacent swap that would create at least one run,
// scanning row-major and testing the right and lower neighbour of each cell.
// The board is restored before returning.
func FindMoves(b *Board) []Move {
	var moves []Move
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			a := P(r, c)
			if c+1 < b.cols {
				moves = tryMove(b, a, P(r, c+1), moves)
			}
			if r+1 < b.rows {
				moves = tryMove(b, a, P(r+1, c), moves)
			}
		}
	}
	return moves
}

func tryMove(b *Board, a, c Pos, moves []Move) []Move {
	if b.At(a).IsEmpty() || b.At(c).IsEmpty() || b.At(a).SameBase(b.At(c)) {
		return moves
	}
	b.swap(a, c)
	touch := 0
	for _, run := range FindAllMatches(b) {
		touch += run.Len()
	}
	b.swap(a, c)
	if touch > 0 {
		moves = append(moves, Move{A: a, B: c, Touch: touch})
	}
	return moves
}

// HasMoves reports whether any swap on the board produces a match.
func HasMoves(b *Board) bool {
	return len(FindMoves(b)) > 0
}

// BestMove returns the move touching the most tiles; ties go to the first
// found. The second result is false when the board is deadlocked.
func BestMove(b *Board) (Move, bool) {
	moves := FindMoves(b)
	if len(moves) == 0 {
		return Move{}, false
	}
	best := moves[0]
	for _, m := range moves[1:] {
		if m.Touch > best.Touch {
			best = m
		}
	}
	return best, true
}
