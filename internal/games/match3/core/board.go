package core

import "fmt"

// Board is the rows x cols playing field.
// Cells are stored in row-major order: index = row*cols + col.
type Board struct {
	rows  int
	cols  int
	cells []Tile
}

// NewBoard creates a board with every cell empty.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Tile, rows*cols),
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) index(p Pos) int {
	return p.Row*b.cols + p.Col
}

// InBounds returns true if the position lies on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// mustInBounds panics on positions outside the board. Callers are expected
// to validate coordinates before they reach the engine.
func (b *Board) mustInBounds(p Pos) {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("match3: position %v outside %dx%d board", p, b.rows, b.cols))
	}
}

// At returns the tile at p. Out-of-bounds positions read as empty.
func (b *Board) At(p Pos) Tile {
	if !b.InBounds(p) {
		return Empty()
	}
	return b.cells[b.index(p)]
}

// Set stores a tile at p. Out-of-bounds positions are ignored.
func (b *Board) Set(p Pos, t Tile) {
	if b.InBounds(p) {
		b.cells[b.index(p)] = t
	}
}

// swap exchanges two cells in place.
func (b *Board) swap(a, c Pos) {
	ia, ic := b.index(a), b.index(c)
	b.cells[ia], b.cells[ic] = b.cells[ic], b.cells[ia]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// OccupiedCount returns the number of non-empty cells.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, t := range b.cells {
		if !t.IsEmpty() {
			n++
		}
	}
	return n
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return len(b.cells) - b.OccupiedCount()
}

// OccupiedPositions returns all non-empty positions in row-major order.
func (b *Board) OccupiedPositions() []Pos {
	out := make([]Pos, 0, len(b.cells))
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if !b.cells[r*b.cols+c].IsEmpty() {
				out = append(out, P(r, c))
			}
		}
	}
	return out
}

// Specials returns the positions of all special tiles in row-major order.
func (b *Board) Specials() []Pos {
	var out []Pos
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r*b.cols+c].IsSpecial() {
				out = append(out, P(r, c))
			}
		}
	}
	return out
}

// maxUID returns the highest special identity present on the board.
func (b *Board) maxUID() uint64 {
	var m uint64
	for _, t := range b.cells {
		if t.IsSpecial() && t.UID > m {
			m = t.UID
		}
	}
	return m
}

// emptyBelow reports whether any cell under p in its column is empty.
func (b *Board) emptyBelow(p Pos) bool {
	for r := p.Row + 1; r < b.rows; r++ {
		if b.cells[r*b.cols+p.Col].IsEmpty() {
			return true
		}
	}
	return false
}
