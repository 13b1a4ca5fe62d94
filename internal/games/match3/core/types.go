// Package core provides the board engine for the match-three duel.
// This package is UI-agnostic and deterministic for a given random source.
package core

import "fmt"

// Pos is a cell coordinate. Row 0 is the top row; rows grow downward.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Adjacent reports whether two positions share an edge.
func (p Pos) Adjacent(other Pos) bool {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Kind tags the variant held by a Tile.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindNormal
	KindSpecial
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindNormal:
		return "Normal"
	case KindSpecial:
		return "Special"
	default:
		return "Unknown"
	}
}

// Tile is the content of a single cell.
// Base is meaningful for normal and special tiles; UID only for specials.
type Tile struct {
	Kind Kind
	Base int
	UID  uint64
}

// Empty returns an empty tile.
func Empty() Tile {
	return Tile{}
}

// Normal returns a plain tile with the given base value.
func Normal(base int) Tile {
	return Tile{Kind: KindNormal, Base: base}
}

// Special returns a power tile with a stable identity.
func Special(uid uint64, base int) Tile {
	return Tile{Kind: KindSpecial, Base: base, UID: uid}
}

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t.Kind == KindEmpty
}

// IsSpecial reports whether the tile is a special.
func (t Tile) IsSpecial() bool {
	return t.Kind == KindSpecial
}

// SameBase reports whether two tiles match for run detection.
// Empty tiles never match anything.
func (t Tile) SameBase(other Tile) bool {
	if t.IsEmpty() || other.IsEmpty() {
		return false
	}
	return t.Base == other.Base
}

// String returns the ASCII form used by RenderASCII.
func (t Tile) String() string {
	switch t.Kind {
	case KindNormal:
		return fmt.Sprintf("%d", t.Base)
	case KindSpecial:
		return fmt.Sprintf("%d*", t.Base)
	default:
		return "."
	}
}

// Orientation of a run.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "V"
	}
	return "H"
}

// Run is a maximal line of at least three equal-base cells.
// Cells are ordered left to right or top to bottom.
type Run struct {
	Orientation Orientation
	Base        int
	Cells       []Pos
}

// Len returns the number of cells in the run.
func (r Run) Len() int {
	return len(r.Cells)
}

// Contains reports whether p is part of the run.
func (r Run) Contains(p Pos) bool {
	for _, c := range r.Cells {
		if c == p {
			return true
		}
	}
	return false
}
