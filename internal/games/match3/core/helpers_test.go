package core

// MustParseBoard is like ParseBoard but panics on malformed input.
func MustParseBoard(s string) *Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Equal reports whether both boards have the same size and tiles.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, t := range b.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}
