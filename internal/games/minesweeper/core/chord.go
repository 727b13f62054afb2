package core

// Chord reveals every hidden, unflagged neighbour of the revealed numbered
// cell at (x, y) when the number of flagged neighbours equals its value.
// In any other situation it is a no-op. Each neighbour goes through Reveal,
// so a wrongly placed flag can still lose the game.
func (b *Board) Chord(x, y int) (RevealResult, error) {
	if !b.inBounds(x, y) {
		return RevealResult{Outcome: Continue}, b.outOfBounds(x, y)
	}
	if b.status.Over() {
		return RevealResult{Outcome: Continue}, nil
	}

	i := b.index(x, y)
	c := b.cells[i]
	if c.State != Revealed || c.Value <= 0 {
		return RevealResult{Outcome: Continue}, nil
	}

	var buf [8]int
	neighbors := b.neighborIndexes(i, buf[:0])
	flags := 0
	for _, n := range neighbors {
		if b.cells[n].State == Flagged {
			flags++
		}
	}
	if flags != c.Value {
		return RevealResult{Outcome: Continue}, nil
	}

	out := RevealResult{Outcome: Continue}
	for _, n := range neighbors {
		if b.cells[n].State != Hidden {
			continue
		}
		res, err := b.Reveal(n%b.width, n/b.width)
		if err != nil {
			return out, err
		}
		out.Revealed = append(out.Revealed, res.Revealed...)
		out.Outcome = res.Outcome
		if res.Outcome != Continue {
			break
		}
	}
	return out, nil
}
