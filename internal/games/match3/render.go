package match3

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/matchduel/internal/core"
	"github.com/vovakirdan/matchduel/internal/games/match3/core"
)

const (
	cellWidth = 2 // Glyph plus one space
	hudHeight = 2
	panelGap  = 2
	panelRule = 16 // Width of the rule under the health lines
)

const (
	glyphNormal  = '●'
	glyphSpecial = '◆'
	glyphEmpty   = '·'
)

// Render draws the board, the HUD and, in duel mode, the fight panel.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.engine == nil {
		dst.DrawText(0, 0, "Not started")
		return
	}

	board := g.engine.Board()
	g.renderHUD(dst)

	box := platformcore.NewRect(0, hudHeight, board.Cols()*cellWidth+3, board.Rows()+2)
	dst.DrawBox(box)
	renderTiles(dst, board, box.X+2, box.Y+1)

	if g.duel != nil {
		g.renderDuelPanel(dst, box.Right()+panelGap, box.Y)
	}

	if g.gameOver {
		dst.DrawTextCentered(box.Bottom(), fmt.Sprintf("GAME OVER: %s", g.outcome))
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawText(0, 0, g.Title())

	board := g.engine.Board()
	hud := fmt.Sprintf("Score: %d  Moves: %d  Specials: %d",
		g.engine.Score(), g.engine.Moves(), len(board.Specials()))
	if g.hasMove {
		hud += fmt.Sprintf("  Last: %v <-> %v", g.lastMove.A, g.lastMove.B)
	}
	dst.DrawText(0, 1, hud)
}

// renderTiles draws one glyph per cell, colored by base.
func renderTiles(dst *platformcore.Screen, b *core.Board, x0, y0 int) {
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			t := b.At(core.P(r, c))
			glyph, color := tileGlyph(t)
			dst.SetColored(x0+c*cellWidth, y0+r, glyph, color)
		}
	}
}

func tileGlyph(t core.Tile) (rune, platformcore.Color) {
	switch t.Kind {
	case core.KindNormal:
		return glyphNormal, platformcore.TileColor(t.Base)
	case core.KindSpecial:
		return glyphSpecial, platformcore.TileColor(t.Base)
	default:
		return glyphEmpty, platformcore.ColorGray
	}
}

func (g *Game) renderDuelPanel(dst *platformcore.Screen, x, y int) {
	d := g.duel
	dst.DrawText(x, y, fmt.Sprintf("Player %4d/%d", d.PlayerHealth(), d.cfg.PlayerHealth))
	dst.DrawText(x, y+1, fmt.Sprintf("Enemy  %4d/%d", d.EnemyHealth(), d.cfg.EnemyHealth))
	dst.DrawHLine(x, y+2, panelRule, '─')
	dst.DrawText(x, y+3, fmt.Sprintf("Clock  %s", d.Now().Truncate(time.Millisecond)))
	dst.DrawText(x, y+4, fmt.Sprintf("Attack in %s", d.NextAttackIn().Truncate(100*time.Millisecond)))

	line := y + 6
	if d.Stunned() {
		dst.DrawTextColored(x, line, "Enemy stunned", platformcore.ColorYellow)
		line++
	}
	if d.Slowed() {
		dst.DrawTextColored(x, line, "Enemy slowed", platformcore.ColorCyan)
		line++
	}
	if d.LifestealActive() {
		dst.DrawTextColored(x, line, "Lifesteal", platformcore.ColorMagenta)
	}
}

// ScreenSize returns the screen dimensions Render needs for this game.
func (g *Game) ScreenSize() (int, int) {
	if g.engine == nil {
		return 20, 1
	}
	w := g.engine.Board().Cols()*cellWidth + 3
	if g.duel != nil {
		w += panelGap + 24
	}
	w = max(w, 48)
	return w, hudHeight + g.engine.Board().Rows() + 3
}
