package core

import "github.com/gammazero/deque"

// RevealResult lists the cells that changed to Revealed during one operation,
// in the order they were revealed, and the outcome of the move.
type RevealResult struct {
	Revealed []Cell
	Outcome  Outcome
}

// Reveal uncovers the cell at (x, y).
//
// Revealing a flagged or already revealed cell, or any cell after the game
// has ended, is a no-op. Revealing a mine loses the game and uncovers every
// mine. Revealing a zero-valued cell flood-fills its connected zero region
// and the numbered border around it.
func (b *Board) Reveal(x, y int) (RevealResult, error) {
	if !b.inBounds(x, y) {
		return RevealResult{Outcome: Continue}, b.outOfBounds(x, y)
	}
	if b.status.Over() {
		return RevealResult{Outcome: Continue}, nil
	}

	i := b.index(x, y)
	if b.cells[i].State != Hidden {
		return RevealResult{Outcome: Continue}, nil
	}

	if b.cells[i].IsMine {
		return b.explode(i), nil
	}

	revealed := b.flood(i)
	b.safeRemaining -= len(revealed)

	if b.safeRemaining == 0 {
		b.status = Won
		b.logger.Info("board cleared", "width", b.width, "height", b.height, "mines", b.mineCount)
		return RevealResult{Revealed: revealed, Outcome: Win}, nil
	}
	b.status = InProgress
	return RevealResult{Revealed: revealed, Outcome: Continue}, nil
}

// flood reveals the safe cell at start and, when its value is zero, every
// hidden unflagged cell reachable through zero-valued cells. Cells are marked
// Revealed when enqueued so none is visited twice.
func (b *Board) flood(start int) []Cell {
	b.cells[start].State = Revealed
	revealed := []Cell{b.cells[start]}
	if b.cells[start].Value != 0 {
		return revealed
	}

	var queue deque.Deque
	queue.PushBack(start)

	var buf [8]int
	for queue.Len() > 0 {
		cur := queue.PopFront().(int)
		for _, n := range b.neighborIndexes(cur, buf[:0]) {
			c := &b.cells[n]
			if c.State != Hidden || c.IsMine {
				continue
			}
			c.State = Revealed
			revealed = append(revealed, *c)
			if c.Value == 0 {
				queue.PushBack(n)
			}
		}
	}
	return revealed
}

// explode handles revealing the mine at i: the game is lost and every mine,
// flagged or not, is swept to Revealed. The triggering mine is listed first.
func (b *Board) explode(i int) RevealResult {
	b.cells[i].State = Revealed
	b.status = Lost
	revealed := []Cell{b.cells[i]}

	for _, m := range b.mines {
		if b.cells[m].State == Revealed {
			continue
		}
		b.cells[m].State = Revealed
		revealed = append(revealed, b.cells[m])
	}

	b.logger.Info("mine revealed", "x", b.cells[i].X, "y", b.cells[i].Y)
	return RevealResult{Revealed: revealed, Outcome: Loss}
}
