// turfline is a terminal horse-racing career simulator.
//
// Usage:
//
//	turfline list               - List career scenarios
//	turfline play <scenario>    - Start or resume a career
//	turfline records            - Browse finished-career records
//	turfline serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible careers
//	--db <path>     - Set database path (default: ~/.turfline/records.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "turfline",
	Short: "Turfline - a racing career in your terminal",
	Long: `Turfline is a turn-based racing career simulator. Train one horse
through a fixed season of turns, run the scheduled races, and retire
with a grade.

Available commands:
  list     - Show all career scenarios
  play     - Start or resume a career
  records  - Browse finished-career records
  serve    - Start SSH server for remote play

Examples:
  turfline list
  turfline play classic
  turfline play sprint --seed 42
  turfline records
  turfline serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.turfline/records.db", "Path to records database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}
