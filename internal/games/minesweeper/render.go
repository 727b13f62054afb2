package minesweeper

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/core"
)

const (
	cellWidth = 2 // Each cell is a glyph followed by a gap
	hudHeight = 3
	footerH   = 2
)

// Cell glyphs.
const (
	glyphHidden    = '·'
	glyphFlag      = 'F'
	glyphMine      = '*'
	glyphWrongFlag = 'X'
)

// boardSize returns the framed board size in screen cells.
func boardSize(w, h int) (int, int) {
	return w*cellWidth + 3, h + 2
}

// Resize records a new terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the board and HUD.
func (g *Game) checkScreenSize() {
	if g.state == nil {
		g.tooSmall = false
		return
	}
	var bw, bh int
	g.state.Do(func(b *core.Board) {
		bw, bh = boardSize(b.Width(), b.Height())
	})
	minW := max(bw, 30)
	minH := bh + hudHeight + footerH
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.state.Do(func(b *core.Board) {
		bw, bh := boardSize(b.Width(), b.Height())
		frame := platformcore.NewRect((g.screenW-bw)/2, hudHeight, bw, bh)

		g.renderHUD(dst, b, frame)
		g.renderBoard(dst, b, frame)
		g.renderFooter(dst, b, frame)
	})
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, mine counter and round status.
func (g *Game) renderHUD(dst *platformcore.Screen, b *core.Board, frame platformcore.Rect) {
	dst.DrawTextCentered(0, g.variant.Title)

	mines := fmt.Sprintf("Mines: %d", b.MinesRemaining())
	dst.DrawTextColored(frame.X, 1, mines, platformcore.ColorBrightRed)

	cleared := fmt.Sprintf("%d/%d", b.RevealedCount(), b.Width()*b.Height()-b.MineCount())
	dst.DrawText(max(frame.Right()-len(cleared), frame.X+len(mines)+1), 1, cleared)

	if b.Cheated() {
		dst.DrawTextCentered(2, "(cheat used)")
	}
}

// renderBoard draws the framed grid and the cursor.
func (g *Game) renderBoard(dst *platformcore.Screen, b *core.Board, frame platformcore.Rect) {
	dst.DrawBox(frame, platformcore.ColorGray)

	over := b.Status().Over()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			v, err := b.CellAt(x, y)
			if err != nil {
				continue
			}
			r, c := g.cellGlyph(x, y, v, over)
			dst.SetColored(frame.X+2+x*cellWidth, frame.Y+1+y, r, c)
		}
	}

	if !over {
		cx := frame.X + 2 + g.cursorX*cellWidth
		cy := frame.Y + 1 + g.cursorY
		dst.SetColored(cx-1, cy, '[', platformcore.ColorYellow)
		dst.SetColored(cx+1, cy, ']', platformcore.ColorYellow)
	}
}

// cellGlyph picks the rune and color for one cell.
func (g *Game) cellGlyph(x, y int, v core.CellView, over bool) (rune, platformcore.Color) {
	switch v.State {
	case core.Flagged:
		if over && !v.IsMine {
			return glyphWrongFlag, platformcore.ColorRed
		}
		return glyphFlag, platformcore.ColorBrightRed
	case core.Hidden:
		if over && v.IsMine {
			return glyphMine, platformcore.ColorRed
		}
		return glyphHidden, platformcore.ColorGray
	}

	if v.IsMine {
		if g.exploded != nil && g.exploded.X == x && g.exploded.Y == y {
			return glyphMine, platformcore.ColorBrightRed
		}
		return glyphMine, platformcore.ColorRed
	}
	if v.Value == 0 {
		return ' ', platformcore.ColorDefault
	}
	return rune('0' + v.Value), platformcore.NumberColor(v.Value)
}

// renderFooter draws the end-of-round message below the board.
func (g *Game) renderFooter(dst *platformcore.Screen, b *core.Board, frame platformcore.Rect) {
	y := frame.Bottom()
	switch b.Status() {
	case core.Won:
		dst.DrawTextCentered(y, "Board cleared! Press R to play again")
	case core.Lost:
		dst.DrawTextCentered(y, "BOOM! Press R to restart")
	case core.NotStarted:
		dst.DrawTextCentered(y, "Pick a cell to start")
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	hint := "Arrows/HJKL: Move | Space: Reveal | F: Flag | C: Chord | R: Restart | Q: Quit"
	if g.cheat {
		hint += " | X: Flag all"
	}
	return hint
}
