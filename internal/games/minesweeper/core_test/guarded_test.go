package core_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/core"
)

func TestGuardedConcurrentAccess(t *testing.T) {
	b, err := core.Generate(16, 16, 40, rand.New(rand.NewSource(11)), quiet())
	if err != nil {
		t.Fatal(err)
	}
	g := core.NewGuarded(b)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 200; i++ {
				x, y := rng.Intn(16), rng.Intn(16)
				switch rng.Intn(3) {
				case 0:
					_, _ = g.Reveal(x, y)
				case 1:
					_, _ = g.ToggleFlag(x, y)
				default:
					_, _ = g.CellAt(x, y)
				}
				_ = g.Status()
				_ = g.MinesRemaining()
			}
		}(int64(w))
	}
	wg.Wait()

	g.Do(func(b *core.Board) {
		flags := b.FlagCount()
		if b.MinesRemaining() != b.MineCount()-flags {
			if b.Status() != core.Lost {
				t.Errorf("counter %d inconsistent with %d flags", b.MinesRemaining(), flags)
			}
		}
	})
}

func TestGuardedReplace(t *testing.T) {
	g := core.NewGuarded(mustLayout(t, "*.", ".."))
	if _, err := g.Reveal(0, 0); err != nil {
		t.Fatal(err)
	}
	if g.Status() != core.Lost {
		t.Fatalf("expected Lost, got %v", g.Status())
	}
	g.Replace(mustLayout(t, "*.", ".."))
	if g.Status() != core.NotStarted {
		t.Errorf("expected fresh board, got %v", g.Status())
	}
}
