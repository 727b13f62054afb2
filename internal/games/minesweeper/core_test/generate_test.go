package core_test

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/core"
)

// scriptedRand returns a fixed sequence of values, ignoring the bound.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func quiet() core.Option {
	return core.WithLogger(log.New(io.Discard))
}

func mustLayout(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	b, err := core.NewFromLayout(&core.Layout{Rows: rows}, quiet())
	if err != nil {
		t.Fatalf("NewFromLayout(%v) failed: %v", rows, err)
	}
	return b
}

func TestGenerateInvalidConfiguration(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name                string
		width, height, mine int
	}{
		{"zero width", 0, 5, 1},
		{"zero height", 5, 0, 1},
		{"negative width", -1, 5, 1},
		{"negative mines", 5, 5, -1},
		{"mines fill board", 3, 3, 9},
		{"mines exceed board", 3, 3, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := core.Generate(tc.width, tc.height, tc.mine, rng, quiet())
			if !errors.Is(err, core.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
			if b != nil {
				t.Error("expected no board on error")
			}
		})
	}
}

func TestGenerateNilRandomSource(t *testing.T) {
	if _, err := core.Generate(4, 4, 3, nil, quiet()); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration for nil rng, got %v", err)
	}

	// No mines means no draws, so nil is fine.
	if _, err := core.Generate(4, 4, 0, nil, quiet()); err != nil {
		t.Errorf("unexpected error with zero mines: %v", err)
	}
}

func TestGenerateRejectsOutOfRangeDraw(t *testing.T) {
	rng := &scriptedRand{vals: []int{7}}
	if _, err := core.Generate(2, 2, 1, rng, quiet()); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestGenerateProperties(t *testing.T) {
	sizes := []struct{ w, h, m int }{
		{1, 1, 0},
		{1, 3, 0},
		{2, 2, 3},
		{8, 8, 10},
		{9, 9, 10},
		{16, 16, 40},
		{30, 16, 99},
		{5, 7, 34},
	}

	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, sz := range sizes {
			b, err := core.Generate(sz.w, sz.h, sz.m, rng, quiet())
			if err != nil {
				t.Fatalf("Generate(%d, %d, %d) failed: %v", sz.w, sz.h, sz.m, err)
			}

			if b.Status() != core.NotStarted {
				t.Errorf("expected NotStarted, got %v", b.Status())
			}
			if b.MinesRemaining() != sz.m {
				t.Errorf("expected MinesRemaining=%d, got %d", sz.m, b.MinesRemaining())
			}
			if b.SafeRemaining() != sz.w*sz.h-sz.m {
				t.Errorf("expected SafeRemaining=%d, got %d", sz.w*sz.h-sz.m, b.SafeRemaining())
			}

			cells := b.Cells()
			if len(cells) != sz.w*sz.h {
				t.Fatalf("expected %d cells, got %d", sz.w*sz.h, len(cells))
			}

			mines := 0
			for _, c := range cells {
				if c.State != core.Hidden {
					t.Errorf("cell (%d, %d) not hidden", c.X, c.Y)
				}
				if c.IsMine {
					mines++
					if c.Value != core.MineValue {
						t.Errorf("mine (%d, %d) has value %d", c.X, c.Y, c.Value)
					}
					continue
				}
				want := 0
				for _, n := range b.Neighbors(c.X, c.Y) {
					if cells[n.Y*sz.w+n.X].IsMine {
						want++
					}
				}
				if c.Value != want {
					t.Errorf("cell (%d, %d): value %d, want %d", c.X, c.Y, c.Value, want)
				}
			}
			if mines != sz.m {
				t.Errorf("%dx%d: expected %d mines, got %d", sz.w, sz.h, sz.m, mines)
			}
			if len(b.Mines()) != sz.m {
				t.Errorf("Mines() returned %d, want %d", len(b.Mines()), sz.m)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := core.Generate(16, 16, 40, rand.New(rand.NewSource(42)), quiet())
	if err != nil {
		t.Fatal(err)
	}
	b, err := core.Generate(16, 16, 40, rand.New(rand.NewSource(42)), quiet())
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Errorf("same seed produced different boards:\n%s\n\n%s", a, b)
	}
}

func TestGenerateSwapRemove(t *testing.T) {
	// Pool [0 1 2 3 4 5]. Draw 1 takes 1 and moves 5 into its slot;
	// draw 1 again now takes 5.
	rng := &scriptedRand{vals: []int{1, 1}}
	b, err := core.Generate(3, 2, 2, rng, quiet())
	if err != nil {
		t.Fatal(err)
	}
	mines := b.Mines()
	want := []core.Coord{core.C(1, 0), core.C(2, 1)}
	if len(mines) != len(want) {
		t.Fatalf("expected %d mines, got %v", len(want), mines)
	}
	for i := range want {
		if mines[i] != want[i] {
			t.Errorf("mine %d: got %v, want %v", i, mines[i], want[i])
		}
	}
}

func TestNeighbors(t *testing.T) {
	b := mustLayout(t, "....", "....", "....")

	tests := []struct {
		name  string
		x, y  int
		count int
	}{
		{"corner", 0, 0, 3},
		{"far corner", 3, 2, 3},
		{"top edge", 1, 0, 5},
		{"left edge", 0, 1, 5},
		{"interior", 1, 1, 8},
		{"out of bounds", 4, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := b.Neighbors(tc.x, tc.y)
			if len(n) != tc.count {
				t.Errorf("Neighbors(%d, %d) = %v, expected %d cells", tc.x, tc.y, n, tc.count)
			}
		})
	}

	got := b.Neighbors(1, 1)
	want := []core.Coord{
		core.C(0, 0), core.C(1, 0), core.C(2, 0),
		core.C(0, 1), core.C(2, 1),
		core.C(0, 2), core.C(1, 2), core.C(2, 2),
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
