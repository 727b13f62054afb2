package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/core"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var (
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagMines      int
	flagLayout     string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board variant (default: minesweeper, 8x8 with 10 mines).

Controls:
  Arrows/HJKL/WASD  - Move the cursor
  Space/Enter       - Reveal
  F                 - Flag / unflag
  C                 - Chord: reveal around a satisfied number
  X                 - Flag every mine (if display.cheat is enabled)
  R                 - New board
  ?                 - More keys
  Q/Ctrl+C          - Quit

Board options:
  --difficulty   classic, beginner, intermediate or expert
  --width, --height, --mines override the size
  --layout       play a fixed YAML layout (rows of '*' and '.')

Examples:
  sweeper play
  sweeper play minesweeper_expert
  sweeper play --difficulty intermediate
  sweeper play --width 12 --height 12 --mines 25
  sweeper play --layout ./boards/corner.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addBoardFlags(playCmd)
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a YAML board layout")
}

// addBoardFlags registers the board size flags shared by play and board.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: classic, beginner, intermediate, expert")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Board width")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Board height")
	cmd.Flags().IntVar(&flagMines, "mines", 0, "Number of mines")
}

func boardOverrides() config.Overrides {
	return config.Overrides{
		Difficulty: flagDifficulty,
		Width:      flagWidth,
		Height:     flagHeight,
		Mines:      flagMines,
	}
}

func hasBoardOverrides() bool {
	return flagDifficulty != "" || flagWidth > 0 || flagHeight > 0 || flagMines > 0
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := minesweeper.DefaultID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'sweeper list' to see available boards.")
		os.Exit(1)
	}

	cfg := loadConfig()
	logger, closeLog := interactiveLogger()
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	if g, ok := game.(*minesweeper.Game); ok {
		configureGame(g, cfg, logger)
	}

	store := openStore()

	runErr := tui.Run(game, store, runtimeConfig(), tui.Options{
		ShowHelp: cfg.Display.ShowHelp,
		Logger:   logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// configureGame applies the config file and the board flags to a game.
func configureGame(g *minesweeper.Game, cfg config.SweeperConfig, logger *log.Logger) {
	g.Configure(cfg)
	g.SetLogger(logger)

	if hasBoardOverrides() {
		b, err := cfg.ResolveBoard(g.BoardConfig(), boardOverrides())
		if err != nil {
			fail("%v", err)
		}
		g.SetBoard(b)
	}

	if flagLayout != "" {
		data, err := os.ReadFile(flagLayout)
		if err != nil {
			fail("cannot read layout: %v", err)
		}
		l, err := core.ParseLayout(data)
		if err != nil {
			fail("invalid layout %s: %v", flagLayout, err)
		}
		g.SetLayout(l)
	}
}
