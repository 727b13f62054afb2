package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "stats.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStatsDefaultToZero(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats("minesweeper")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Played != 0 || st.Won != 0 {
		t.Errorf("expected zero counters, got %+v", st)
	}
	if st.WinRate() != 0 {
		t.Errorf("expected 0%% win rate, got %f", st.WinRate())
	}
}

func TestRecordPlayedAndWon(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 4; i++ {
		if err := store.RecordPlayed("minesweeper"); err != nil {
			t.Fatalf("RecordPlayed() failed: %v", err)
		}
	}
	if err := store.RecordWon("minesweeper"); err != nil {
		t.Fatalf("RecordWon() failed: %v", err)
	}
	if err := store.RecordPlayed("minesweeper_expert"); err != nil {
		t.Fatal(err)
	}

	st, err := store.Stats("minesweeper")
	if err != nil {
		t.Fatal(err)
	}
	if st.Played != 4 || st.Won != 1 {
		t.Errorf("expected 4 played / 1 won, got %+v", st)
	}
	if st.WinRate() != 25 {
		t.Errorf("expected 25%% win rate, got %f", st.WinRate())
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(all))
	}
	if all[0].GameID != "minesweeper" || all[1].GameID != "minesweeper_expert" {
		t.Errorf("unexpected order: %v", all)
	}
}

func TestSaveAndRecentResults(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{GameID: "minesweeper", Width: 8, Height: 8, Mines: 10, Outcome: OutcomeLoss, Revealed: 12},
		{GameID: "minesweeper", Width: 8, Height: 8, Mines: 10, Outcome: OutcomeWin, Revealed: 54, Duration: 90 * time.Second},
		{GameID: "minesweeper_expert", SessionID: "abc", Width: 30, Height: 16, Mines: 99, Outcome: OutcomeLoss, Cheated: true},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	got, err := store.RecentResults("minesweeper", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Outcome != OutcomeWin || got[0].Revealed != 54 {
		t.Errorf("newest result = %+v", got[0])
	}
	if got[0].Duration != 90*time.Second {
		t.Errorf("duration = %v", got[0].Duration)
	}

	all, err := store.RecentResults("", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].GameID != "minesweeper_expert" || !all[0].Cheated || all[0].SessionID != "abc" {
		t.Errorf("unexpected newest overall: %+v", all)
	}
}

func TestClearStats(t *testing.T) {
	store := openTestStore(t)

	store.RecordPlayed("minesweeper")
	store.RecordPlayed("minesweeper_beginner")
	store.SaveResult(Result{GameID: "minesweeper", Width: 8, Height: 8, Mines: 10, Outcome: OutcomeLoss})

	if err := store.ClearStats("minesweeper"); err != nil {
		t.Fatalf("ClearStats() failed: %v", err)
	}

	st, _ := store.Stats("minesweeper")
	if st.Played != 0 {
		t.Errorf("stats not cleared: %+v", st)
	}
	res, _ := store.RecentResults("minesweeper", 10)
	if len(res) != 0 {
		t.Errorf("results not cleared: %d left", len(res))
	}
	other, _ := store.Stats("minesweeper_beginner")
	if other.Played != 1 {
		t.Error("ClearStats touched another variant")
	}
}
