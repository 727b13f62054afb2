package core

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Board is the state of one minesweeper game.
// Cells are stored in row-major order: index = y*width + x.
// A Board is not safe for concurrent use; wrap it in Guarded for that.
type Board struct {
	width     int
	height    int
	mineCount int
	cells     []Cell
	mines     []int // sorted cell indexes

	safeRemaining  int
	minesRemaining int
	status         Status
	cheated        bool

	logger *log.Logger
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithLogger sets the logger used for engine diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// newBoard builds a board from a validated set of mine indexes and derives
// every cell value.
func newBoard(width, height int, mines []int, opts []Option) *Board {
	b := &Board{
		width:     width,
		height:    height,
		mineCount: len(mines),
		cells:     make([]Cell, width*height),
		mines:     append([]int(nil), mines...),
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	sort.Ints(b.mines)

	for i := range b.cells {
		b.cells[i].X = i % width
		b.cells[i].Y = i / width
	}
	for _, m := range b.mines {
		b.cells[m].IsMine = true
		b.cells[m].Value = MineValue
	}

	var buf [8]int
	for i := range b.cells {
		if b.cells[i].IsMine {
			continue
		}
		n := 0
		for _, j := range b.neighborIndexes(i, buf[:0]) {
			if b.cells[j].IsMine {
				n++
			}
		}
		b.cells[i].Value = n
	}

	b.safeRemaining = width*height - b.mineCount
	b.minesRemaining = b.mineCount
	b.status = NotStarted
	return b
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// neighborIndexes appends the in-bounds neighbours of cell i to buf in
// canonical order (dy -1..1, then dx -1..1).
func (b *Board) neighborIndexes(i int, buf []int) []int {
	x, y := i%b.width, i/b.width
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.inBounds(nx, ny) {
				buf = append(buf, b.index(nx, ny))
			}
		}
	}
	return buf
}

// Neighbors returns the in-bounds 8-neighbourhood of (x, y) in canonical
// order. Out-of-bounds coordinates yield nil.
func (b *Board) Neighbors(x, y int) []Coord {
	if !b.inBounds(x, y) {
		return nil
	}
	var buf [8]int
	idx := b.neighborIndexes(b.index(x, y), buf[:0])
	out := make([]Coord, len(idx))
	for k, i := range idx {
		out[k] = Coord{X: i % b.width, Y: i / b.width}
	}
	return out
}

func (b *Board) Width() int          { return b.width }
func (b *Board) Height() int         { return b.height }
func (b *Board) MineCount() int      { return b.mineCount }
func (b *Board) Status() Status      { return b.status }
func (b *Board) SafeRemaining() int  { return b.safeRemaining }
func (b *Board) MinesRemaining() int { return b.minesRemaining }

// Cheated reports whether FlagAllMines has been used on this board.
func (b *Board) Cheated() bool { return b.cheated }

// RevealedCount returns the number of safe cells revealed so far.
func (b *Board) RevealedCount() int {
	return b.width*b.height - b.mineCount - b.safeRemaining
}

// FlagCount returns the number of cells currently flagged.
func (b *Board) FlagCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].State == Flagged {
			n++
		}
	}
	return n
}

// CellAt returns the player-visible view of the cell at (x, y).
// Value is exposed once the cell is revealed or the game is over.
// IsMine is exposed for revealed cells, after the game ends, or once the
// board has been cheated.
func (b *Board) CellAt(x, y int) (CellView, error) {
	if !b.inBounds(x, y) {
		return CellView{}, b.outOfBounds(x, y)
	}
	c := b.cells[b.index(x, y)]
	v := CellView{State: c.State}
	if c.State == Revealed || b.status.Over() {
		v.Value = c.Value
	}
	if c.State == Revealed || b.status.Over() || b.cheated {
		v.IsMine = c.IsMine
	}
	return v, nil
}

// Cells returns a copy of every cell in row-major order, including hidden
// mine positions. Intended for hosts that render a solved board.
func (b *Board) Cells() []Cell {
	return append([]Cell(nil), b.cells...)
}

// Mines returns the mine coordinates in row-major order.
func (b *Board) Mines() []Coord {
	out := make([]Coord, len(b.mines))
	for k, i := range b.mines {
		out[k] = Coord{X: i % b.width, Y: i / b.width}
	}
	return out
}

// String renders the solved board: '*' for mines, '.' for zero and the
// digit otherwise. Rows are separated by newlines.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.width*b.height + b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteRune(solvedRune(b.cells[b.index(x, y)]))
		}
	}
	return sb.String()
}

func solvedRune(c Cell) rune {
	switch {
	case c.IsMine:
		return '*'
	case c.Value == 0:
		return '.'
	default:
		return rune('0' + c.Value)
	}
}
