package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	flagClear       bool
	flagInteractive bool
	flagRecent      int
)

var statsCmd = &cobra.Command{
	Use:   "stats [variant]",
	Short: "Show games played and won",
	Long: `Display games played, games won and recent rounds.

Without a variant, prints a summary of every variant that has been played.

Examples:
  sweeper stats
  sweeper stats minesweeper_expert
  sweeper stats minesweeper --clear
  sweeper stats -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stats of the variant (or of every variant)")
	statsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse stats in a table")
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent rounds to show")
}

func runStats(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'sweeper list' to see available boards.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening stats database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		clearStats(store, gameID)
	case flagInteractive:
		rcfg := runtimeConfig()
		if _, err := tui.RunStats(store, rcfg.ScreenW, rcfg.ScreenH); err != nil {
			fail("%v", err)
		}
	case gameID == "":
		printSummary(store)
	default:
		printVariant(store, gameID)
	}
}

func clearStats(store *storage.Store, gameID string) {
	ids := []string{gameID}
	if gameID == "" {
		ids = ids[:0]
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
	}
	for _, id := range ids {
		if err := store.ClearStats(id); err != nil {
			fail("%v", err)
		}
	}
	fmt.Printf("Cleared stats for %d board(s).\n", len(ids))
}

func printSummary(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}

	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sweeper play' to start one!")
		return
	}

	fmt.Printf("  %-26s  %6s  %6s  %6s  %s\n", "Board", "Played", "Won", "Rate", "Last played")
	fmt.Printf("  %-26s  %6s  %6s  %6s  %s\n", "-----", "------", "---", "----", "-----------")
	for _, st := range all {
		title := st.GameID
		if info, ok := registry.Lookup(st.GameID); ok {
			title = info.Title
		}
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-26s  %6d  %6d  %5.0f%%  %s\n", title, st.Played, st.Won, st.WinRate(), last)
	}
}

func printVariant(store *storage.Store, gameID string) {
	st, err := store.Stats(gameID)
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	results, err := store.RecentResults(gameID, flagRecent)
	if err != nil {
		fail("retrieving results: %v", err)
	}

	title := gameID
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}

	fmt.Printf("Stats - %s\n", title)
	fmt.Println()
	fmt.Printf("  Played:   %d\n", st.Played)
	fmt.Printf("  Won:      %d\n", st.Won)
	fmt.Printf("  Win rate: %.0f%%\n", st.WinRate())
	fmt.Println()

	if len(results) == 0 {
		fmt.Printf("No rounds recorded yet. Play 'sweeper play %s' to start one!\n", gameID)
		return
	}

	fmt.Printf("  %-10s  %-10s  %-8s  %-6s  %s\n", "Result", "Board", "Cleared", "Time", "Date")
	fmt.Printf("  %-10s  %-10s  %-8s  %-6s  %s\n", "------", "-----", "-------", "----", "----")
	for _, r := range results {
		outcome := r.Outcome
		if r.Cheated {
			outcome += "*"
		}
		board := fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.Mines)
		d := r.Duration.Round(time.Second)
		fmt.Printf("  %-10s  %-10s  %-8d  %-6s  %s\n",
			outcome, board, r.Revealed, d.String(), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
