package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/core"
)

func TestParseLayout(t *testing.T) {
	data := []byte(`
name: corner
rows:
  - "*.."
  - "..."
  - "..*"
`)
	l, err := core.ParseLayout(data)
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}
	if l.Name != "corner" {
		t.Errorf("expected name corner, got %q", l.Name)
	}
	w, h := l.Size()
	if w != 3 || h != 3 {
		t.Errorf("expected 3x3, got %dx%d", w, h)
	}

	b, err := core.NewFromLayout(l, quiet())
	if err != nil {
		t.Fatal(err)
	}
	if b.MineCount() != 2 {
		t.Errorf("expected 2 mines, got %d", b.MineCount())
	}
	if got, want := b.String(), "*1.\n121\n.1*"; got != want {
		t.Errorf("String():\n%s\nwant:\n%s", got, want)
	}
}

func TestParseLayoutInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no rows", "name: empty\nrows: []\n"},
		{"ragged", "rows: ['*..', '..']\n"},
		{"bad rune", "rows: ['*x.', '...']\n"},
		{"all mines", "rows: ['**', '**']\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.ParseLayout([]byte(tc.data)); !errors.Is(err, core.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}

	if _, err := core.ParseLayout([]byte("rows: [")); err == nil {
		t.Error("expected yaml error")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	b, err := core.Generate(9, 9, 10, rand.New(rand.NewSource(3)), quiet())
	if err != nil {
		t.Fatal(err)
	}
	data, err := b.Layout().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	l, err := core.ParseLayout(data)
	if err != nil {
		t.Fatal(err)
	}
	c, err := core.NewFromLayout(l, quiet())
	if err != nil {
		t.Fatal(err)
	}
	if b.String() != c.String() {
		t.Errorf("layout round trip changed board:\n%s\n\n%s", b, c)
	}
}
