// tetrotime is a terminal clock whose digits are built from falling
// tetrominoes.
//
// Usage:
//
//	tetrotime                      - Show the local time
//	tetrotime --stopwatch          - Count up from zero
//	tetrotime --countdown 00:05:00 - Count down
//	tetrotime serve                - Start SSH server
//	tetrotime schemes              - List colorschemes
//	tetrotime preview <digits>     - Print assembled digits as text
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default from config: 30)
//	--seed <value>     - Set RNG seed for piece colors
//	--config <path>    - Use a custom config file
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetrotime",
	Short: "TetroTime - a clock built from falling tetrominoes",
	Long: `TetroTime shows the time in your terminal. Every digit is assembled from
falling tetrominoes; when a digit changes its pieces fall away and the new
digit drops into place.

Available commands:
  serve    - Start SSH server so others can watch the clock
  schemes  - Show all colorschemes
  preview  - Print assembled digits as text

Examples:
  tetrotime
  tetrotime --stopwatch
  tetrotime --countdown 00:25:00 --colorscheme pastel
  tetrotime --backend tcell
  tetrotime serve --ssh :2222
  tetrotime preview 0123456789`,
	Args: cobra.NoArgs,
	Run:  runClock,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for piece colors (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(schemesCmd)
	rootCmd.AddCommand(previewCmd)
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetrotime",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogger returns the logger for interactive modes. The terminal belongs to
// the renderer, so logs go to --log-file or nowhere. The returned close
// function is never nil.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}
