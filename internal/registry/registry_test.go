package registry

import (
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz_stub_b"}, func() Game { return stubGame{id: "zz_stub_b"} })
	Register(GameInfo{ID: "zz_stub_a", Title: "Custom"}, func() Game { return stubGame{id: "zz_stub_a"} })

	info, ok := Lookup("zz_stub_b")
	if !ok {
		t.Fatal("zz_stub_b not registered")
	}
	if info.Title != "Stub zz_stub_b" {
		t.Errorf("title from factory = %q", info.Title)
	}
	if info, _ := Lookup("zz_stub_a"); info.Title != "Custom" {
		t.Errorf("explicit title = %q", info.Title)
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("created %q", g.ID())
	}

	if _, err := Create("nope"); err == nil {
		t.Error("expected error for unknown id")
	}
	if Exists("nope") {
		t.Error("Exists(nope) = true")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "zz_dup"}, func() Game { return stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(GameInfo{ID: "zz_dup"}, func() Game { return stubGame{id: "zz_dup"} })
}
