// wayfarer is a TUI exploration game: walk an unbounded grid, watch the
// map of everywhere you have been grow behind you, and chart every site.
//
// Usage:
//
//	wayfarer worlds            - List available worlds
//	wayfarer play <world>      - Set out into a world
//	wayfarer menu              - Start the interactive world picker
//	wayfarer serve             - Start SSH server for remote play
//	wayfarer journeys <world>  - Show the journey log for a world
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible visual detail
//	--db <path>      - Set database path (default: ~/.wayfarer/journeys.db)
//	--config <path>  - Path to custom settings YAML
//	--worlds <dir>   - Directory of extra world definition files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wayfarer/internal/config"
	"github.com/vovakirdan/tui-wayfarer/internal/registry"
	"github.com/vovakirdan/tui-wayfarer/internal/world"

	// Import built-in worlds to register them
	_ "github.com/vovakirdan/tui-wayfarer/internal/worlds"
)

var (
	// Global flags
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagWorldsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wayfarer",
	Short: "Wayfarer - Chart unknown worlds in your terminal",
	Long: `Wayfarer is a terminal exploration game. You walk an unbounded grid
world one step at a time; every location you visit and every path you
take is recorded on a living map you can pan, zoom and click.

Available commands:
  worlds   - Show all available worlds
  play     - Set out into a specific world directly
  menu     - Interactive world picker
  serve    - Start SSH server for remote play
  journeys - View the journey log

Examples:
  wayfarer worlds
  wayfarer play highlands
  wayfarer play causeway --mode freeroam
  wayfarer menu
  wayfarer serve --ssh :2222
  wayfarer journeys highlands`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wayfarer/journeys.db", "Path to journeys database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagWorldsDir, "worlds", "", "Directory of extra world definition files")

	// Add subcommands
	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(journeysCmd)
}

// loadExtraWorlds adds world files from --worlds to the registry.
func loadExtraWorlds() {
	if flagWorldsDir == "" {
		return
	}
	loader := world.NewLoader(flagWorldsDir)
	worlds, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not scan worlds directory: %v\n", err)
		return
	}
	for _, w := range worlds {
		if err := registry.AddLoaded(w); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping world %s: %v\n", w.ID, err)
		}
	}
}

// loadSettings loads the wayfarer settings, falling back to defaults.
func loadSettings() config.WayfarerConfig {
	cfg, err := config.LoadWayfarer(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return config.DefaultWayfarerConfig()
	}
	return cfg
}
