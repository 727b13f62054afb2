// Package core implements the minesweeper rules engine: mine placement, cell
// values, reveal with flood fill, flag bookkeeping and win/loss detection.
// It has no knowledge of terminals, storage or input devices; hosts drive it
// through Board methods and render what it returns.
package core

// MineValue is the Value carried by a mine cell.
const MineValue = -1

// Status is the lifecycle state of a board.
type Status int

const (
	NotStarted Status = iota // No reveal has happened yet
	InProgress               // At least one safe cell revealed
	Won                      // Every safe cell revealed
	Lost                     // A mine was revealed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case InProgress:
		return "InProgress"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s == Won || s == Lost
}

// RevealState is what the player currently sees on a cell.
type RevealState int

const (
	Hidden RevealState = iota
	Flagged
	Revealed
)

// String returns a human-readable name for the reveal state.
func (r RevealState) String() string {
	switch r {
	case Hidden:
		return "Hidden"
	case Flagged:
		return "Flagged"
	case Revealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a single reveal.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Loss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "Continue"
	case Win:
		return "Win"
	case Loss:
		return "Loss"
	default:
		return "Unknown"
	}
}

// Coord is a cell position. X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Cell is a single square of the board.
// IsMine and Value are fixed at generation; only State changes during play.
type Cell struct {
	X, Y   int
	IsMine bool
	Value  int // MineValue for mines, else the number of neighbouring mines
	State  RevealState
}

// CellView is the host-facing projection of a cell. Value and IsMine are
// only filled in when the player is allowed to know them.
type CellView struct {
	State  RevealState
	Value  int
	IsMine bool
}
