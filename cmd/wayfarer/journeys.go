package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wayfarer/internal/registry"
	"github.com/vovakirdan/tui-wayfarer/internal/storage"
)

var journeysCmd = &cobra.Command{
	Use:   "journeys [world]",
	Short: "Show the journey log",
	Long: `Display the journey log. With a world id, shows the top 10 journeys
for that world ranked by locations charted; without one, shows the most
recent journeys across all worlds.

Examples:
  wayfarer journeys
  wayfarer journeys highlands
  wayfarer journeys causeway`,
	Args: cobra.MaximumNArgs(1),
	Run:  runJourneys,
}

func runJourneys(cmd *cobra.Command, args []string) {
	loadExtraWorlds()

	// Open journey storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journeys database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printRecentJourneys(store)
		return
	}
	printWorldJourneys(store, args[0])
}

// printWorldJourneys shows the top journeys for a single world.
func printWorldJourneys(store *storage.Store, worldID string) {
	// Check if the world exists
	if !registry.Exists(worldID) {
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", worldID)
		fmt.Fprintln(os.Stderr, "Run 'wayfarer worlds' to see available worlds.")
		os.Exit(1)
	}

	// Get the world title
	w, err := registry.Create(worldID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
		os.Exit(1)
	}

	// Get top journeys
	journeys, err := store.TopJourneys(worldID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving journeys: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Journey Log - %s\n", w.Title)
	fmt.Println()

	if len(journeys) == 0 {
		fmt.Println("No journeys recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wayfarer play %s' to log the first journey!\n", worldID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-9s  %s\n", "Rank", "Charted", "Steps", "Sites", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-9s  %s\n", "----", "-------", "-----", "-----", "----", "----")

	// Print journeys
	for i, entry := range journeys {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6s  %-9s  %s\n",
			i+1, entry.Nodes, entry.Steps, sitesColumn(entry), entry.Mode,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show aggregate stats
	fmt.Println()
	if stats, err := store.GetWorldStats(worldID); err == nil {
		fmt.Printf("Journeys: %d  Best charted: %d  Completions: %d\n",
			stats.Journeys, stats.BestCharted, stats.Completions)
	}
}

// printRecentJourneys shows the latest journeys across every world.
func printRecentJourneys(store *storage.Store) {
	journeys, err := store.RecentJourneys(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving journeys: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Journey Log - Recent")
	fmt.Println()

	if len(journeys) == 0 {
		fmt.Println("No journeys recorded yet.")
		fmt.Println()
		fmt.Println("Run 'wayfarer play <world>' to log the first journey!")
		return
	}

	// Print header
	fmt.Printf("  %-12s  %-8s  %-6s  %-6s  %-9s  %s\n", "World", "Charted", "Steps", "Sites", "Mode", "Date")
	fmt.Printf("  %-12s  %-8s  %-6s  %-6s  %-9s  %s\n", "-----", "-------", "-----", "-----", "----", "----")

	// Print journeys
	for _, entry := range journeys {
		fmt.Printf("  %-12s  %-8d  %-6d  %-6s  %-9s  %s\n",
			entry.WorldID, entry.Nodes, entry.Steps, sitesColumn(entry), entry.Mode,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Per-world summary
	if all, err := store.GetAllWorldsStats(); err == nil && len(all) > 0 {
		fmt.Println()
		for _, info := range registry.List() {
			stats, ok := all[info.ID]
			if !ok {
				continue
			}
			fmt.Printf("  %-12s  journeys %-4d  best %-4d  completions %d\n",
				info.ID, stats.Journeys, stats.BestCharted, stats.Completions)
		}
	}
}

// sitesColumn formats the resolved-sites cell, marking completed runs.
func sitesColumn(entry storage.JourneyEntry) string {
	sites := fmt.Sprintf("%d", entry.Resolved)
	if entry.Completed {
		sites += "*"
	}
	return sites
}
