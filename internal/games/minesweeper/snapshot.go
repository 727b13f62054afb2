package minesweeper

import (
	"strings"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/core"
)

// Snapshot captures the player-visible game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Variant        string
	Width          int
	Height         int
	Mines          int
	CursorX        int
	CursorY        int
	Status         string
	MinesRemaining int
	Revealed       int
	Cheated        bool
	TooSmall       bool
	// Grid is the board as the player sees it, one string per row:
	// '#' hidden, 'F' flagged, '*' mine, '.' empty, digits for counts.
	Grid []string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Variant:  g.variant.ID,
		CursorX:  g.cursorX,
		CursorY:  g.cursorY,
		TooSmall: g.tooSmall,
	}

	g.state.Do(func(b *core.Board) {
		s.Width = b.Width()
		s.Height = b.Height()
		s.Mines = b.MineCount()
		s.Status = b.Status().String()
		s.MinesRemaining = b.MinesRemaining()
		s.Revealed = b.RevealedCount()
		s.Cheated = b.Cheated()

		s.Grid = make([]string, b.Height())
		var sb strings.Builder
		for y := 0; y < b.Height(); y++ {
			sb.Reset()
			for x := 0; x < b.Width(); x++ {
				v, _ := b.CellAt(x, y)
				sb.WriteRune(snapshotRune(v))
			}
			s.Grid[y] = sb.String()
		}
	})
	return s
}

func snapshotRune(v core.CellView) rune {
	switch {
	case v.State == core.Hidden:
		return '#'
	case v.State == core.Flagged:
		return 'F'
	case v.IsMine:
		return '*'
	case v.Value == 0:
		return '.'
	default:
		return rune('0' + v.Value)
	}
}
