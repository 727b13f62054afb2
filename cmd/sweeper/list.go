package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants",
	Long:  `Shows every registered board variant with its size and mine count.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, g.ID, g.Description, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sweeper play <id>' to play a board.")
}
