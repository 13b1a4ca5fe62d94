package core

// Mask is a set of board positions backed by a rows x cols boolean grid.
type Mask struct {
	rows  int
	cols  int
	bits  []bool
	count int
}

// NewMask creates an empty mask sized for a rows x cols board.
func NewMask(rows, cols int) *Mask {
	return &Mask{
		rows: rows,
		cols: cols,
		bits: make([]bool, rows*cols),
	}
}

func (m *Mask) inBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// Add inserts p. Out-of-bounds positions are skipped.
func (m *Mask) Add(p Pos) {
	if !m.inBounds(p) {
		return
	}
	i := p.Row*m.cols + p.Col
	if !m.bits[i] {
		m.bits[i] = true
		m.count++
	}
}

// Has reports whether p is in the set.
func (m *Mask) Has(p Pos) bool {
	if !m.inBounds(p) {
		return false
	}
	return m.bits[p.Row*m.cols+p.Col]
}

// Len returns the number of positions in the set.
func (m *Mask) Len() int {
	return m.count
}

// Clear removes every position.
func (m *Mask) Clear() {
	for i := range m.bits {
		m.bits[i] = false
	}
	m.count = 0
}

// Positions returns the members in row-major order.
func (m *Mask) Positions() []Pos {
	out := make([]Pos, 0, m.count)
	for i, set := range m.bits {
		if set {
			out = append(out, P(i/m.cols, i%m.cols))
		}
	}
	return out
}
