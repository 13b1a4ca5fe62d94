// Package core provides the platform types shared by every game mode:
// runtime configuration, input frames, game state and the screen buffer
// games render into. Games depend on it; it depends on no game.
package core

// Point addresses a board cell by row and column.
type Point struct {
	Row, Col int
}

// Pt is shorthand for Point{Row: row, Col: col}.
func Pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// Adjacent returns true if the points share an edge.
func (p Point) Adjacent(o Point) bool {
	dr, dc := Abs(p.Row-o.Row), Abs(p.Col-o.Col)
	return dr+dc == 1
}

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
