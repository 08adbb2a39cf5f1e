package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilyakav/turfline/internal/platform/tui"
	"github.com/ilyakav/turfline/internal/storage"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Browse finished-career records",
	Long: `Open the interactive records browser.

Use tab / shift+tab to switch scenarios, arrows to scroll, q to quit.

Examples:
  turfline records
  turfline records --db ./records.db`,
	Run: runRecords,
}

func runRecords(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := tui.RunRecords(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
