package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wayfarer/internal/registry"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List all available worlds",
	Long:  `Shows a list of all worlds known to wayfarer, built-in and loaded.`,
	Run:   runWorlds,
}

func runWorlds(cmd *cobra.Command, args []string) {
	loadExtraWorlds()
	worlds := registry.List()

	if len(worlds) == 0 {
		fmt.Println("No worlds available.")
		return
	}

	fmt.Println("Available worlds:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, w := range worlds {
		if len(w.ID) > maxIDLen {
			maxIDLen = len(w.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Sites", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "-----", "-----")

	// Print worlds
	for _, w := range worlds {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, w.ID, w.Sites, w.Title)
	}

	fmt.Println()
	fmt.Println("Run 'wayfarer play <id>' to set out.")
}
