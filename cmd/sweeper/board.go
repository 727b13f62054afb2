package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/core"
)

var flagYAML bool

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a generated board",
	Long: `Generate a board and print it fully revealed: '*' is a mine, '.' is an
empty cell and digits count adjacent mines. The same --seed always gives the
same board.

With --yaml the board is printed as a layout file for 'sweeper play --layout'.

Examples:
  sweeper board --seed 42
  sweeper board --difficulty expert --seed 7
  sweeper board --width 5 --height 5 --mines 3 --yaml > five.yaml`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	addBoardFlags(boardCmd)
	boardCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the board as a YAML layout")
}

func runBoard(_ *cobra.Command, _ []string) {
	log.SetLevel(logLevel())
	cfg := loadConfig()
	b, err := cfg.ResolveBoard(cfg.Board, boardOverrides())
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board, err := core.NewGame(b.Width, b.Height, b.Mines, rand.New(rand.NewSource(seed)))
	if err != nil {
		fail("%v", err)
	}

	if flagYAML {
		l := board.Layout()
		l.Name = fmt.Sprintf("%s seed %d", b, seed)
		data, err := l.Marshal()
		if err != nil {
			fail("%v", err)
		}
		fmt.Print(string(data))
		return
	}

	fmt.Printf("# %s seed %d\n", b, seed)
	fmt.Println(board.String())
}
