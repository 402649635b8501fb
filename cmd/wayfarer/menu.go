package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/platform/tui"
	"github.com/vovakirdan/tui-wayfarer/internal/registry"
	"github.com/vovakirdan/tui-wayfarer/internal/storage"
	"github.com/vovakirdan/tui-wayfarer/internal/wayfarer"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start wayfarer with the world picker",
	Long: `Start wayfarer in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a world.
After an expedition ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select world
  Tab          - Journey log
  Q            - Quit

Examples:
  wayfarer menu
  wayfarer menu --db ./journeys.db
  wayfarer menu --worlds ./my-worlds`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	loadExtraWorlds()
	settings := buildSettings()

	// Open journey storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open journeys database: %v\n", err)
		store = nil
	}

	width, height := termSize()
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the journey board
		if menuResult.WantsBoard {
			goBack, boardErr := tui.RunBoard(store, cfg.ScreenW, cfg.ScreenH)
			if boardErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", boardErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the board
		}

		worldID := menuResult.WorldID
		if worldID == "" {
			break
		}

		// Create the world instance
		w, err := registry.Create(worldID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
			continue
		}

		// Fresh seed for each expedition
		cfg.Seed = time.Now().UnixNano()

		// Run the expedition
		if err := tui.Run(wayfarer.New(w, settings), store, cfg, modeName(settings)); err != nil {
			fmt.Fprintf(os.Stderr, "Error running expedition: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
