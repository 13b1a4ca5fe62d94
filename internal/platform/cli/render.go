// Package cli holds the terminal plumbing shared by the matchduel commands:
// screen printing, terminal detection and logger setup.
package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matchduel/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{}

func init() {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		style := lipgloss.NewStyle()
		if n := c.ANSI(); n >= 0 {
			style = style.Foreground(lipgloss.Color(strconv.Itoa(n)))
		}
		colorStyles[c] = style
	}
}

// headerStyle is used for section titles printed between screens.
var headerStyle = lipgloss.NewStyle().Bold(true)

// RenderScreen converts a Screen buffer to a printable string. Without
// color it is the screen's trimmed text; with color, adjacent cells of the
// same color are grouped to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, color bool) string {
	if !color {
		return s.TrimmedString()
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Header formats a section title, bold when color is on.
func Header(title string, color bool) string {
	if !color {
		return "== " + title + " =="
	}
	return headerStyle.Render(title)
}
