package core

import "sync"

// Guarded serializes access to a Board so several goroutines (for example an
// SSH session's input and render loops) can share one game. All operations on
// one Guarded take the same lock.
type Guarded struct {
	mu    sync.Mutex
	board *Board
}

// NewGuarded wraps b.
func NewGuarded(b *Board) *Guarded {
	return &Guarded{board: b}
}

// Replace swaps in a new board, e.g. on restart.
func (g *Guarded) Replace(b *Board) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.board = b
}

// Do runs fn with exclusive access to the board.
func (g *Guarded) Do(fn func(b *Board)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.board)
}

func (g *Guarded) Reveal(x, y int) (RevealResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Reveal(x, y)
}

func (g *Guarded) ToggleFlag(x, y int) (FlagResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.ToggleFlag(x, y)
}

func (g *Guarded) Chord(x, y int) (RevealResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Chord(x, y)
}

func (g *Guarded) FlagAllMines() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.FlagAllMines()
}

func (g *Guarded) CellAt(x, y int) (CellView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.CellAt(x, y)
}

func (g *Guarded) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Status()
}

func (g *Guarded) MinesRemaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.MinesRemaining()
}
