package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetrotime/internal/colorscheme"
)

// swatchSize is the number of sample colors shown per scheme.
const swatchSize = 8

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List all colorschemes",
	Long:  `Shows every colorscheme with a sample of the piece colors it produces.`,
	Args:  cobra.NoArgs,
	Run:   runSchemes,
}

func runSchemes(_ *cobra.Command, _ []string) {
	schemes := colorscheme.List()

	if len(schemes) == 0 {
		fmt.Println("No colorschemes available.")
		return
	}

	fmt.Println("Available colorschemes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, s := range schemes {
		maxIDLen = max(maxIDLen, len(s.ID)+1) // room for the default marker
		maxTitleLen = max(maxTitleLen, len(s.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Sample")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	// Print schemes
	for _, s := range schemes {
		id := s.ID
		if id == colorscheme.DefaultID {
			id += "*"
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, id, maxTitleLen, s.Title, swatch(s.ID))
	}

	fmt.Println()
	fmt.Println("* default")
	fmt.Println("Run 'tetrotime --colorscheme <id>' to use a scheme, or press 'c' while the clock runs.")
}

// swatch renders the first colors a scheme hands out.
func swatch(id string) string {
	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	colors, err := colorscheme.Create(id, seed)
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < swatchSize; i++ {
		c := colors.Next()
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██"))
	}
	return sb.String()
}
