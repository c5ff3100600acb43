package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapekit/internal/registry"
	"github.com/vovakirdan/shapekit/internal/scene"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List query ops and saved scenes",
	Long:  `Shows every registered query op and every scene found on disk.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	ops := registry.List()

	fmt.Println("Query ops:")
	fmt.Println()

	maxNameLen := 2 // "Op" header
	for _, op := range ops {
		maxNameLen = max(maxNameLen, len(op.Name))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Op", "Shapes", "Summary")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "--", "------", "-------")
	for _, op := range ops {
		fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, op.Name, op.Arity, op.Summary)
	}

	fmt.Println()
	fmt.Println("Scenes:")
	fmt.Println()
	for _, name := range scene.Available() {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println()
	fmt.Println("Run 'shapekit eval --scene <name>' to evaluate a scene.")
}
