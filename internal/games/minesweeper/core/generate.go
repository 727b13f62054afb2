package core

import "fmt"

// RandomSource supplies uniform integers in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewGame creates a fresh board with mineCount mines placed by rng.
func NewGame(width, height, mineCount int, rng RandomSource, opts ...Option) (*Board, error) {
	return Generate(width, height, mineCount, rng, opts...)
}

// Generate places mineCount mines uniformly at random by drawing without
// replacement from the pool of all cell indexes, then derives every cell
// value. The returned board has every cell Hidden and status NotStarted.
func Generate(width, height, mineCount int, rng RandomSource, opts ...Option) (*Board, error) {
	if err := validate(width, height, mineCount); err != nil {
		return nil, fmt.Errorf("core: generate: %w", err)
	}
	if mineCount > 0 && rng == nil {
		return nil, fmt.Errorf("core: generate: %w: nil random source", ErrInvalidConfiguration)
	}

	pool := make([]int, width*height)
	for i := range pool {
		pool[i] = i
	}

	mines := make([]int, 0, mineCount)
	remaining := len(pool)
	for k := 0; k < mineCount; k++ {
		i := rng.Intn(remaining)
		if i < 0 || i >= remaining {
			return nil, fmt.Errorf("core: generate: %w: random source returned %d for Intn(%d)",
				ErrInvalidConfiguration, i, remaining)
		}
		mines = append(mines, pool[i])
		// swap-remove
		pool[i] = pool[remaining-1]
		remaining--
	}

	b := newBoard(width, height, mines, opts)
	b.logger.Debug("board generated", "width", width, "height", height, "mines", mineCount)
	return b, nil
}
