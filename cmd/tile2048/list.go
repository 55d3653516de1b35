package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/strategy"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available strategies",
	Long:  `Shows the auto-play strategies that can be passed to 'tile2048 auto --strategy'.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	strategies := strategy.List()

	if len(strategies) == 0 {
		fmt.Println("No strategies available.")
		return
	}

	fmt.Println("Available strategies:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range strategies {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, s := range strategies {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tile2048 auto --strategy <id>' to watch one play.")
}
