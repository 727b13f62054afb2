package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a board cannot be built from
	// the requested dimensions, mine count or layout.
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrOutOfBounds is returned when a coordinate lies outside the board.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

func (b *Board) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, x, y, b.width, b.height)
}

// validate checks the generator constraints shared by Generate and layouts.
func validate(width, height, mineCount int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfiguration, width, height)
	}
	if mineCount < 0 || mineCount >= width*height {
		return fmt.Errorf("%w: mine count %d outside [0, %d)", ErrInvalidConfiguration, mineCount, width*height)
	}
	return nil
}
