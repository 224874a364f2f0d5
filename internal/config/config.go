// Package config provides YAML-based configuration loading for the clock.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tetrotime/internal/core"
	"github.com/vovakirdan/tetrotime/internal/tetromino"
)

// Supported terminal backends.
const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

// Config contains all tetrotime settings.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Animation AnimationConfig `yaml:"animation"`
	Time      TimeConfig      `yaml:"time"`
	Server    ServerConfig    `yaml:"server"`

	// Source is where the config was loaded from.
	Source string `yaml:"-"`
}

// DisplayConfig defines how the clock is drawn.
type DisplayConfig struct {
	FPS         int    `yaml:"fps"`
	Background  string `yaml:"background"`
	Colorscheme string `yaml:"colorscheme"`
	Backend     string `yaml:"backend"`
	Catalog     string `yaml:"catalog"`
}

// AnimationConfig defines the piece timing.
type AnimationConfig struct {
	SpawnDelay    int `yaml:"spawn_delay"`
	RemovalMargin int `yaml:"removal_margin"`
}

// TimeConfig defines how often the time source is read.
type TimeConfig struct {
	ResampleInterval string `yaml:"resample_interval"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string `yaml:"address"`
	HostKey     string `yaml:"host_key"`
	IdleTimeout string `yaml:"idle_timeout"`
}

// BackgroundColor parses the configured background.
func (c Config) BackgroundColor() (core.Color, error) {
	col, err := core.ParseHex(c.Display.Background)
	if err != nil {
		return core.Color{}, fmt.Errorf("config: display.background: %w", err)
	}
	return col, nil
}

// ResampleInterval parses time.resample_interval.
func (c Config) ResampleInterval() (time.Duration, error) {
	return parseDuration("time.resample_interval", c.Time.ResampleInterval)
}

// IdleTimeout parses server.idle_timeout.
func (c Config) IdleTimeout() (time.Duration, error) {
	return parseDuration("server.idle_timeout", c.Server.IdleTimeout)
}

// Tetromino returns the engine settings.
func (c Config) Tetromino() (tetromino.Config, error) {
	bg, err := c.BackgroundColor()
	if err != nil {
		return tetromino.Config{}, err
	}
	return tetromino.Config{
		SpawnDelay:    c.Animation.SpawnDelay,
		RemovalMargin: c.Animation.RemovalMargin,
		Background:    bg,
	}, nil
}

// Validate checks every field that can be wrong.
func (c Config) Validate() error {
	if c.Display.FPS <= 0 {
		return fmt.Errorf("config: display.fps must be positive, got %d", c.Display.FPS)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	switch c.Display.Backend {
	case BackendBubbleTea, BackendTcell:
	default:
		return fmt.Errorf("config: display.backend must be %q or %q, got %q", BackendBubbleTea, BackendTcell, c.Display.Backend)
	}
	if c.Display.Colorscheme == "" {
		return fmt.Errorf("config: display.colorscheme is empty")
	}
	if c.Animation.SpawnDelay < 0 {
		return fmt.Errorf("config: animation.spawn_delay must not be negative, got %d", c.Animation.SpawnDelay)
	}
	if c.Animation.RemovalMargin < 0 {
		return fmt.Errorf("config: animation.removal_margin must not be negative, got %d", c.Animation.RemovalMargin)
	}
	if d, err := c.ResampleInterval(); err != nil {
		return err
	} else if d < 0 {
		return fmt.Errorf("config: time.resample_interval must not be negative, got %s", d)
	}
	if _, err := c.IdleTimeout(); err != nil {
		return err
	}
	return nil
}

func parseDuration(field, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", field, err)
	}
	return d, nil
}
