package core

// Drop lets tiles fall per column. Locked cells keep their value and act as
// fixed slots; every other occupied cell falls as far as the floor and the
// locked cells allow, preserving column order. The lock mask is cleared once
// all columns are processed, so a lock lasts for exactly one drop.
func Drop(b *Board, locked *Mask) {
	movers := make([]Tile, 0, b.rows)
	for c := 0; c < b.cols; c++ {
		movers = movers[:0]
		for r := b.rows - 1; r >= 0; r-- {
			p := P(r, c)
			if isLocked(locked, p) {
				continue
			}
			if t := b.At(p); !t.IsEmpty() {
				movers = append(movers, t)
			}
		}

		next := 0
		for r := b.rows - 1; r >= 0; r-- {
			p := P(r, c)
			if isLocked(locked, p) {
				continue
			}
			if next < len(movers) {
				b.Set(p, movers[next])
				next++
			} else {
				b.Set(p, Empty())
			}
		}
	}

	if locked != nil {
		locked.Clear()
	}
}

func isLocked(locked *Mask, p Pos) bool {
	return locked != nil && locked.Has(p)
}

// FillBlanks puts a fresh random normal into every empty cell, row-major.
// Runs formed by the new tiles are left for the next cascade pass.
// Returns the number of cells filled.
func FillBlanks(b *Board, rng IntNSource, elements int) int {
	filled := 0
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			p := P(r, c)
			if b.At(p).IsEmpty() {
				b.Set(p, randomTile(rng, elements))
				filled++
			}
		}
	}
	return filled
}
