package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI colors when the screen is printed.
type Color uint8

// Predefined colors. ColorDefault leaves the terminal color unchanged.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// tilePalette colors tile bases 1..n; bases past the end wrap around.
var tilePalette = []Color{
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorYellow,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorWhite,
}

// TileColor returns the display color of a tile base. Non-positive bases
// get ColorGray.
func TileColor(base int) Color {
	if base < 1 {
		return ColorGray
	}
	return tilePalette[(base-1)%len(tilePalette)]
}

// ANSI returns the basic ANSI color number for c, or -1 for ColorDefault.
func (c Color) ANSI() int {
	switch c {
	case ColorRed:
		return 1
	case ColorGreen:
		return 2
	case ColorYellow:
		return 3
	case ColorBlue:
		return 4
	case ColorMagenta:
		return 5
	case ColorCyan:
		return 6
	case ColorWhite:
		return 7
	case ColorOrange:
		return 208
	case ColorGray:
		return 8
	default:
		return -1
	}
}
