package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/core"
)

func TestChord(t *testing.T) {
	tests := []struct {
		name      string
		flags     []core.Coord
		outcome   core.Outcome
		revealed  int
		wantState core.Status
	}{
		{
			name:      "flags match value",
			flags:     []core.Coord{core.C(0, 0)},
			outcome:   core.Win,
			revealed:  7,
			wantState: core.Won,
		},
		{
			name:      "too few flags",
			flags:     nil,
			outcome:   core.Continue,
			revealed:  0,
			wantState: core.InProgress,
		},
		{
			name:      "wrong flag loses",
			flags:     []core.Coord{core.C(1, 0)},
			outcome:   core.Loss,
			revealed:  1,
			wantState: core.Lost,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustLayout(t,
				"*...",
				"....",
				"....",
				"...*",
			)
			if _, err := b.Reveal(1, 1); err != nil {
				t.Fatal(err)
			}
			for _, f := range tc.flags {
				if _, err := b.ToggleFlag(f.X, f.Y); err != nil {
					t.Fatal(err)
				}
			}

			res, err := b.Chord(1, 1)
			if err != nil {
				t.Fatal(err)
			}
			if res.Outcome != tc.outcome {
				t.Errorf("outcome: got %v, want %v", res.Outcome, tc.outcome)
			}
			if len(res.Revealed) < tc.revealed {
				t.Errorf("revealed: got %d, want at least %d", len(res.Revealed), tc.revealed)
			}
			if tc.revealed == 0 && len(res.Revealed) != 0 {
				t.Errorf("expected no-op, revealed %d", len(res.Revealed))
			}
			if b.Status() != tc.wantState {
				t.Errorf("status: got %v, want %v", b.Status(), tc.wantState)
			}
		})
	}
}

func TestChordHiddenCellIsNoop(t *testing.T) {
	b := mustLayout(t, "*..", "...")
	res, err := b.Chord(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Revealed) != 0 || b.Status() != core.NotStarted {
		t.Errorf("chord on hidden cell changed state: %+v", res)
	}
}
