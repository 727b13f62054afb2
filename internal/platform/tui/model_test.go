package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	engine "github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/core"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var quietLogger = log.New(io.Discard)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// send feeds messages to a model and returns it with the last command.
func send(m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func keys(ks ...string) []tea.Msg {
	msgs := make([]tea.Msg, len(ks))
	for i, k := range ks {
		msgs[i] = keyMsg(k)
	}
	return msgs
}

func newLayoutModel(t *testing.T, store *storage.Store, opts Options, rows ...string) Model {
	t.Helper()
	g := minesweeper.New(minesweeper.Variants[0])
	g.SetLogger(quietLogger)
	g.SetLayout(&engine.Layout{Rows: rows})

	opts.Logger = quietLogger
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}, opts)

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	m.Init()
	return m
}

func TestModelRecordsWin(t *testing.T) {
	store := openTestStore(t)
	m := newLayoutModel(t, store, Options{SessionID: "s1"}, "*..", "...", "...")

	got, _ := send(m, append(keys("right", "down", " "), TickMsg{}, TickMsg{})...)
	model := got.(Model)

	if st := model.State(); !st.GameOver || !st.Won {
		t.Fatalf("state = %+v, expected a win", st)
	}

	st, err := store.Stats(minesweeper.DefaultID)
	if err != nil {
		t.Fatal(err)
	}
	if st.Played != 1 || st.Won != 1 {
		t.Errorf("stats = %+v, expected 1 played / 1 won", st)
	}

	res, err := store.RecentResults(minesweeper.DefaultID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 {
		t.Fatalf("expected one result, got %d", len(res))
	}
	r := res[0]
	if r.Outcome != storage.OutcomeWin || r.SessionID != "s1" {
		t.Errorf("result = %+v", r)
	}
	if r.Width != 3 || r.Height != 3 || r.Mines != 1 || r.Revealed != 8 {
		t.Errorf("board in result = %dx%d/%d revealed %d", r.Width, r.Height, r.Mines, r.Revealed)
	}
}

func TestModelRecordsAbandonOnQuit(t *testing.T) {
	store := openTestStore(t)
	m := newLayoutModel(t, store, Options{}, "*..", "...", "..*")

	// Center cell is a 2: the round starts but does not end.
	got, _ := send(m, keyMsg(" "), TickMsg{})
	got, cmd := send(got, keyMsg("q"))

	if !got.(Model).IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}

	st, _ := store.Stats(minesweeper.DefaultID)
	if st.Played != 1 || st.Won != 0 {
		t.Errorf("stats = %+v", st)
	}
	res, _ := store.RecentResults(minesweeper.DefaultID, 10)
	if len(res) != 1 || res[0].Outcome != storage.OutcomeAbandoned {
		t.Errorf("results = %+v, expected one abandoned round", res)
	}
}

func TestModelQuitBeforeStartRecordsNothing(t *testing.T) {
	store := openTestStore(t)
	m := newLayoutModel(t, store, Options{}, "*..", "...", "...")

	send(m, keyMsg("f"), TickMsg{}, keyMsg("ctrl+c"))

	st, _ := store.Stats(minesweeper.DefaultID)
	if st.Played != 0 {
		t.Errorf("flag-only round counted as played: %+v", st)
	}
}

func TestModelRestartAfterLoss(t *testing.T) {
	store := openTestStore(t)
	m := newLayoutModel(t, store, Options{}, "*..", "...", "..*")

	got, _ := send(m, append(keys("up", "left", " "), TickMsg{})...)
	if st := got.(Model).State(); !st.GameOver || st.Won {
		t.Fatalf("state = %+v, expected a loss", st)
	}

	got, _ = send(got, keyMsg("r"), TickMsg{})
	if st := got.(Model).State(); st.GameOver || st.Started {
		t.Errorf("state after restart = %+v", st)
	}

	res, _ := store.RecentResults(minesweeper.DefaultID, 10)
	if len(res) != 1 || res[0].Outcome != storage.OutcomeLoss {
		t.Errorf("results = %+v, expected one loss", res)
	}

	// A new round counts again once it starts.
	send(got, keyMsg(" "), TickMsg{})
	st, _ := store.Stats(minesweeper.DefaultID)
	if st.Played != 2 {
		t.Errorf("played = %d, expected 2", st.Played)
	}
}

func TestModelBack(t *testing.T) {
	tests := []struct {
		name      string
		allowBack bool
	}{
		{"allowed", true},
		{"disabled", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLayoutModel(t, nil, Options{AllowBack: tt.allowBack}, "*..", "...", "...")
			got, _ := send(m, keyMsg("esc"))
			if got.(Model).BackToMenu() != tt.allowBack {
				t.Errorf("BackToMenu() = %v, want %v", got.(Model).BackToMenu(), tt.allowBack)
			}
		})
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m := newLayoutModel(t, nil, Options{}, "*..", "...", "..*")

	got, _ := send(m, keyMsg(" "), TickMsg{}, tea.WindowSizeMsg{Width: 100, Height: 30}, TickMsg{})
	st := got.(Model).State()
	if !st.Started || st.Score != 1 {
		t.Errorf("state after resize = %+v, expected the revealed cell to survive", st)
	}
}

func TestModelHelpFooter(t *testing.T) {
	m := newLayoutModel(t, nil, Options{ShowHelp: true}, "*..", "...", "...")

	view := m.View()
	if !strings.Contains(view, "reveal") {
		t.Errorf("short help missing:\n%s", view)
	}
	if strings.Contains(view, "flag all mines") {
		t.Error("full help shown before toggling")
	}

	got, _ := send(m, keyMsg("?"))
	if view := got.(Model).View(); !strings.Contains(view, "flag all mines") {
		t.Errorf("full help missing after '?':\n%s", view)
	}
}

func TestGameKeyMapAction(t *testing.T) {
	km := DefaultGameKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"k", core.ActionUp},
		{"w", core.ActionUp},
		{"down", core.ActionDown},
		{"j", core.ActionDown},
		{"left", core.ActionLeft},
		{"h", core.ActionLeft},
		{"right", core.ActionRight},
		{"l", core.ActionRight},
		{" ", core.ActionReveal},
		{"enter", core.ActionReveal},
		{"f", core.ActionFlag},
		{"c", core.ActionChord},
		{"x", core.ActionCheat},
		{"r", core.ActionRestart},
		{"q", core.ActionNone},
		{"z", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.Action(keyMsg(tt.key)); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
