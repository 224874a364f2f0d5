package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetrotime/internal/core"
	"github.com/vovakirdan/tetrotime/internal/digits"
	"github.com/vovakirdan/tetrotime/internal/tetromino"
)

var previewCmd = &cobra.Command{
	Use:   "preview [digits]",
	Short: "Print assembled digits as text",
	Long: `Runs the falling-piece animation for each digit without a terminal UI
and prints the settled glyphs, '#' for a filled pixel and '.' for an empty
one. Useful for checking a custom catalog.

Examples:
  tetrotime preview
  tetrotime preview 2024
  tetrotime preview 0123456789 --config ./custom.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPreview,
}

func runPreview(cmd *cobra.Command, args []string) {
	input := "0123456789"
	if len(args) == 1 {
		input = args[0]
	}

	ds, err := digits.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	engine, err := cfg.Tetromino()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := renderPreview(catalog, ds, engine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

// renderPreview assembles every digit and lays the glyphs out side by side.
func renderPreview(catalog tetromino.Catalog, ds []digits.Digit, engine tetromino.Config) (string, error) {
	// Any color other than the background marks a filled pixel
	fill := core.RGB(255, 255, 255)
	if engine.Background == fill {
		fill = core.Black
	}

	masks := make([][]string, 0, len(ds))
	for _, d := range ds {
		canvas, err := digits.Assemble(catalog, d.Int(), fill, engine)
		if err != nil {
			return "", err
		}
		masks = append(masks, canvas.Mask(engine.Background))
	}

	var sb strings.Builder
	for row := 0; row < digits.GlyphHeight; row++ {
		parts := make([]string, len(masks))
		for i, m := range masks {
			parts[i] = m[row]
		}
		sb.WriteString(strings.Join(parts, "  "))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
