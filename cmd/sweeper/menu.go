package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from an interactive menu",
	Long: `Start sweeper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a board and Tab for stats.
Quitting a board returns to the menu.

Examples:
  sweeper menu
  sweeper menu --db ./stats.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := interactiveLogger()
	defer closeLog()

	store := openStore()
	rcfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, rcfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rcfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsStats {
			goBack, statsErr := tui.RunStats(store, rcfg.ScreenW, rcfg.ScreenH)
			if statsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", statsErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if g, ok := game.(*minesweeper.Game); ok {
			g.Configure(cfg)
			g.SetLogger(logger)
		}

		if flagSeed == 0 {
			rcfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, rcfg, tui.Options{
			ShowHelp: cfg.Display.ShowHelp,
			Logger:   logger,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
