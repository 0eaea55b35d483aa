package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockpilot/internal/core"
)

const blockRune = '█'

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderWell(dst)
	g.renderBoard(dst)
	g.renderPiece(dst)
	g.renderNext(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Lines: %d  Level: %d", g.Title(), g.score, g.lines, g.level+1)
	if g.autoHUD {
		hud += "  [AUTO]"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWell draws the playfield border.
func (g *Game) renderWell(dst *core.Screen) {
	dst.DrawBox(core.NewRect(g.mapOffsetX-1, g.mapOffsetY-1, g.board.Width()+2, g.board.Height()+2))
}

// renderBoard draws the settled cells.
func (g *Game) renderBoard(dst *core.Screen) {
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if kind, ok := g.board.KindAt(x, y); ok {
				dst.SetColored(g.mapOffsetX+x, g.mapOffsetY+y, blockRune, kind.Color())
			}
		}
	}
}

// renderPiece draws the active piece.
func (g *Game) renderPiece(dst *core.Screen) {
	if g.gameOver {
		return
	}
	for _, p := range g.current.cells(g.rot) {
		dst.SetColored(g.mapOffsetX+g.x+p.X, g.mapOffsetY+g.y+p.Y, blockRune, g.current.Color())
	}
}

// renderNext draws the next piece preview to the right of the well.
func (g *Game) renderNext(dst *core.Screen) {
	px := g.mapOffsetX + g.board.Width() + 3
	py := g.mapOffsetY
	if px+5 >= dst.Width() {
		return
	}
	dst.DrawText(px, py, "Next:")
	for _, p := range g.next.cells(0) {
		dst.SetColored(px+p.X, py+2+p.Y, blockRune, g.next.Color())
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	box := core.NewRect((w-maxLen-4)/2, (h-5)/2, maxLen+4, 5)

	for y := box.Y; y < box.Bottom() && y < h; y++ {
		for x := box.X; x < box.Right() && x < w; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
