package core

// FlagResult reports whether a flag toggle changed the board, and the
// mines-remaining display counter after it.
type FlagResult struct {
	Applied        bool
	MinesRemaining int
}

// ToggleFlag flips a hidden cell to flagged or a flagged cell back to hidden.
// Revealed cells and finished boards are left unchanged.
func (b *Board) ToggleFlag(x, y int) (FlagResult, error) {
	if !b.inBounds(x, y) {
		return FlagResult{MinesRemaining: b.minesRemaining}, b.outOfBounds(x, y)
	}
	if b.status.Over() {
		return FlagResult{MinesRemaining: b.minesRemaining}, nil
	}

	c := &b.cells[b.index(x, y)]
	switch c.State {
	case Hidden:
		c.State = Flagged
		b.adjustMinesRemaining(-1)
	case Flagged:
		c.State = Hidden
		b.adjustMinesRemaining(+1)
	default:
		return FlagResult{MinesRemaining: b.minesRemaining}, nil
	}
	return FlagResult{Applied: true, MinesRemaining: b.minesRemaining}, nil
}

// adjustMinesRemaining moves the display counter. The counter is allowed to
// leave [0, mineCount]; doing so is logged but never fails.
func (b *Board) adjustMinesRemaining(delta int) {
	b.minesRemaining += delta
	if b.minesRemaining < 0 || b.minesRemaining > b.mineCount {
		b.logger.Warn("mines remaining out of range",
			"remaining", b.minesRemaining, "mines", b.mineCount)
	}
}

// FlagAllMines flags every hidden mine and marks the board as cheated.
// It returns the number of flags placed. Finished boards are not touched.
func (b *Board) FlagAllMines() int {
	if b.status.Over() {
		return 0
	}
	placed := 0
	for _, m := range b.mines {
		c := b.cells[m]
		if c.State != Hidden {
			continue
		}
		if res, err := b.ToggleFlag(c.X, c.Y); err == nil && res.Applied {
			placed++
		}
	}
	b.cheated = true
	b.logger.Debug("all mines flagged", "placed", placed)
	return placed
}
