package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilyakav/turfline/internal/scenario"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all career scenarios",
	Long:  `Shows every registered career scenario with its length and race count.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenarios := scenario.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Career scenarios:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range scenarios {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s %-6s %s\n", maxIDLen, "ID", "Turns", "Races", "Name")
	fmt.Printf("  %-*s  %-6s %-6s %s\n", maxIDLen, "--", "-----", "-----", "----")

	for _, s := range scenarios {
		fmt.Printf("  %-*s  %-6d %-6d %s\n", maxIDLen, s.ID, s.MaxTurns, s.Races, s.Name)
		fmt.Printf("  %-*s  %s\n", maxIDLen, "", s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'turfline play <id>' to start a career.")
}
