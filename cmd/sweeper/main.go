// sweeper is a terminal minesweeper with local play, an SSH server and
// persistent statistics.
//
// Usage:
//
//	sweeper list                 - List board variants
//	sweeper play [variant]       - Play a board
//	sweeper menu                 - Pick boards interactively
//	sweeper stats [variant]      - Show games played and won
//	sweeper serve                - Start SSH server for remote play
//	sweeper board                - Print a generated board, fully revealed
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.sweeper/stats.db)
//	--config <path>       - Use a specific sweeper.yaml
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write engine logs to a file during local play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Minesweeper in your terminal",
	Long: `sweeper is a terminal minesweeper. Play locally, host boards over SSH,
and keep track of games played and won.

Available commands:
  list     - Show all board variants
  play     - Play a board directly
  menu     - Interactive board picker
  stats    - Games played, won and recent rounds
  serve    - Start SSH server for remote play
  board    - Print a generated board

Examples:
  sweeper play
  sweeper play minesweeper_expert
  sweeper play --width 20 --height 10 --mines 30
  sweeper serve --ssh :2222
  sweeper stats minesweeper`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sweeper/stats.db", "Path to stats database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to sweeper.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file during local play")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(boardCmd)
}
