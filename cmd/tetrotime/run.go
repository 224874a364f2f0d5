package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetrotime/internal/clock"
	"github.com/vovakirdan/tetrotime/internal/clockface"
	"github.com/vovakirdan/tetrotime/internal/config"
	"github.com/vovakirdan/tetrotime/internal/core"
	"github.com/vovakirdan/tetrotime/internal/digits"
	"github.com/vovakirdan/tetrotime/internal/platform/tcellui"
	"github.com/vovakirdan/tetrotime/internal/platform/tui"
)

var (
	flagClock       bool
	flagStopwatch   bool
	flagCountdown   string
	flagColorscheme string
	flagBackend     string
)

func init() {
	rootCmd.Flags().BoolVar(&flagClock, "clock", false, "Show the local time (default)")
	rootCmd.Flags().BoolVar(&flagStopwatch, "stopwatch", false, "Count up from zero")
	rootCmd.Flags().StringVar(&flagCountdown, "countdown", "", "Count down from HH:MM:SS or HHMMSS")
	rootCmd.Flags().StringVar(&flagColorscheme, "colorscheme", "", "Colorscheme for new pieces (see 'tetrotime schemes')")
	rootCmd.Flags().StringVar(&flagBackend, "backend", "", "Terminal backend: bubbletea, tcell")
	rootCmd.MarkFlagsMutuallyExclusive("clock", "stopwatch", "countdown")
}

func runClock(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", cfg.Source)

	mode, err := resolveMode(time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings, err := buildSettings(cfg, mode, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size; the backends resize on their first event anyway
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
		Seed:     flagSeed,
	}

	logger.Info("starting clock", "mode", mode, "backend", cfg.Display.Backend, "scheme", settings.Scheme)

	var runErr error
	switch cfg.Display.Backend {
	case config.BackendTcell:
		runErr = tcellui.Run(settings, rc)
	default:
		runErr = tui.Run(settings, rc)
	}
	if runErr != nil {
		logger.Error("clock stopped", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running clock: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags overrides config fields with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if f := flags.Lookup("colorscheme"); f != nil && f.Changed {
		cfg.Display.Colorscheme = flagColorscheme
	}
	if f := flags.Lookup("backend"); f != nil && f.Changed {
		cfg.Display.Backend = flagBackend
	}
}

// resolveMode picks the time mode from the mode flags.
func resolveMode(now time.Time) (clock.Mode, error) {
	switch {
	case flagCountdown != "":
		d, err := clock.ParseCountdown(flagCountdown)
		if err != nil {
			return nil, err
		}
		return clock.NewCountdown(now, d), nil
	case flagStopwatch:
		return clock.Stopwatch{Start: now}, nil
	default:
		return clock.Clock{}, nil
	}
}

// buildSettings turns a validated config into clock settings.
func buildSettings(cfg config.Config, mode clock.Mode, logger *log.Logger) (clockface.Settings, error) {
	engine, err := cfg.Tetromino()
	if err != nil {
		return clockface.Settings{}, err
	}
	interval, err := cfg.ResampleInterval()
	if err != nil {
		return clockface.Settings{}, err
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return clockface.Settings{}, err
	}
	logger.Debug("catalog ready", "path", cfg.Display.Catalog)

	return clockface.Settings{
		Mode:             mode,
		Catalog:          catalog,
		Engine:           engine,
		Scheme:           cfg.Display.Colorscheme,
		Seed:             flagSeed,
		ResampleInterval: interval,
		Logger:           logger,
	}, nil
}

// loadCatalog returns the configured digit catalog, or the embedded one.
func loadCatalog(cfg config.Config) (*digits.Catalog, error) {
	if cfg.Display.Catalog == "" {
		return digits.Default(), nil
	}
	return digits.LoadCatalog(cfg.Display.Catalog)
}
