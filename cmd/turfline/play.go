package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ilyakav/turfline/internal/breed"
	"github.com/ilyakav/turfline/internal/career"
	"github.com/ilyakav/turfline/internal/platform/tui"
	"github.com/ilyakav/turfline/internal/scenario"
	"github.com/ilyakav/turfline/internal/session"
	"github.com/ilyakav/turfline/internal/storage"
)

var (
	flagBreeds       string
	flagScenarioFile string
	flagName         string
	flagResume       bool
)

var playCmd = &cobra.Command{
	Use:   "play <scenario>",
	Short: "Start or resume a career",
	Long: `Start a career under the given scenario.

Controls:
  1-5        - Pick a menu option / training action
  Enter      - Confirm / advance
  B/Esc      - Back
  Q/Ctrl+C   - Quit (a career on the training screen is saved)

Examples:
  turfline play classic
  turfline play sprint --seed 42
  turfline play classic --name "Paper Moon"
  turfline play classic --resume
  turfline play classic --breeds ./my-breeds.yaml
  turfline play --scenario-file ./my-season.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBreeds, "breeds", "", "Path to custom breed catalogue YAML")
	playCmd.Flags().StringVar(&flagScenarioFile, "scenario-file", "", "Path to a custom scenario preset YAML")
	playCmd.Flags().StringVar(&flagName, "name", "", "Horse name (defaults to the breed's name)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the saved career for this scenario")
}

func runPlay(cmd *cobra.Command, args []string) {
	scenarioID := ""
	if len(args) == 1 {
		scenarioID = args[0]
	}

	if flagScenarioFile != "" {
		id, err := scenario.LoadFile(flagScenarioFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if scenarioID == "" {
			scenarioID = id
		}
	}
	if scenarioID == "" {
		fmt.Fprintln(os.Stderr, "Error: no scenario given")
		fmt.Fprintln(os.Stderr, "Run 'turfline list' to see available scenarios.")
		os.Exit(1)
	}

	preset, err := scenario.Get(scenarioID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
		fmt.Fprintln(os.Stderr, "Run 'turfline list' to see available scenarios.")
		os.Exit(1)
	}

	breeds, err := breed.Load(flagBreeds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading breeds: %v\n", err)
		os.Exit(1)
	}

	// Open records storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		// Continue without storage - the career still works
		store = nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := session.Config{
		Scenario:   preset,
		Breeds:     breeds,
		PlayerName: flagName,
		Seed:       seed,
	}

	if flagResume {
		snap, resumeErr := loadSave(store, scenarioID)
		if resumeErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", resumeErr)
			if store != nil {
				store.Close()
			}
			os.Exit(1)
		}
		cfg.Resume = snap
	}

	sess, err := session.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(sess, store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running career: %v\n", runErr)
		os.Exit(1)
	}
}

// loadSave fetches and decodes the stored snapshot for a scenario.
func loadSave(store *storage.Store, scenarioID string) (*career.Snapshot, error) {
	if store == nil {
		return nil, fmt.Errorf("no records database, nothing to resume")
	}
	data, err := store.LatestSave(scenarioID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("no saved career for scenario %q", scenarioID)
	}
	snap, err := career.DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
