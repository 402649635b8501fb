package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wayfarer/internal/config"
	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/platform/tui"
	"github.com/vovakirdan/tui-wayfarer/internal/registry"
	"github.com/vovakirdan/tui-wayfarer/internal/storage"
	"github.com/vovakirdan/tui-wayfarer/internal/wayfarer"
)

var (
	flagMode      string
	flagAlignment string
)

var playCmd = &cobra.Command{
	Use:   "play <world>",
	Short: "Set out into a world",
	Long: `Start an expedition in the specified world.

Controls:
  Arrows/hjkl    - Step N/S/W/E
  y/u/b/n        - Step diagonally (NW/NE/SW/SE)
  Click          - Travel to the clicked cell
  Drag           - Pan the map
  Wheel / + -    - Zoom (anchored at the cursor)
  Backspace      - Retrace your last step
  E/Enter        - Resolve the site you are standing on
  M              - Toggle north-up / heading-up view
  C              - Recenter on yourself
  0              - Reset zoom and pan
  P/Esc          - Pause
  R              - Restart the expedition
  Q/Ctrl+C       - Quit

Mode options:
  guided   - Terrain rules are enforced (default)
  freeroam - Rules are advisory, every step is allowed

Examples:
  wayfarer play highlands
  wayfarer play causeway --mode freeroam
  wayfarer play tidelocks --alignment heading-up
  wayfarer play highlands --config ./my-settings.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Exploration mode: guided or freeroam")
	playCmd.Flags().StringVar(&flagAlignment, "alignment", "", "Map alignment: north-up or heading-up")
}

// buildSettings combines the settings file with the play flags.
func buildSettings() config.WayfarerConfig {
	cfg := loadSettings()
	if flagMode != "" {
		config.ApplyMode(&cfg, config.Mode(flagMode))
	}
	if flagAlignment != "" {
		cfg.Map.DefaultAlignment = flagAlignment
	}
	return cfg
}

// modeName returns the journey-log name for the effective mode.
func modeName(cfg config.WayfarerConfig) string {
	if !cfg.Session.PathingLocked {
		return "freeroam"
	}
	return "guided"
}

// termSize returns the terminal size, with a fallback for pipes.
func termSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	worldID := args[0]
	loadExtraWorlds()

	// Check if the world exists
	if !registry.Exists(worldID) {
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", worldID)
		fmt.Fprintln(os.Stderr, "Run 'wayfarer worlds' to see available worlds.")
		os.Exit(1)
	}

	w, err := registry.Create(worldID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
		os.Exit(1)
	}

	settings := buildSettings()
	width, height := termSize()
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Open journey storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open journeys database: %v\n", err)
		// Continue without storage - the expedition still works
		store = nil
	}

	// Run the expedition
	runErr := tui.Run(wayfarer.New(w, settings), store, cfg, modeName(settings))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running expedition: %v\n", runErr)
		os.Exit(1)
	}
}
