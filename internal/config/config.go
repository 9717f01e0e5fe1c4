// Package config loads the optional runtime settings file. Simulation
// constants are not configurable here; a file only picks which compiled-in
// profile runs and how it is hosted.
package config

import (
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"

	"github.com/ingyamilmolinar/nodefield/core/profile"
)

type FieldConfig struct {
	Profile string
	Seed    int64
}

type LogConfig struct {
	Level string
}

type WindowConfig struct {
	Width   int
	Height  int
	Title   string
	MountID string `gcfg:"mount-id"`
}

type TerminalConfig struct {
	FPS int
}

// Config mirrors the sections of a nodefield.gcfg file.
type Config struct {
	Field    FieldConfig
	Log      LogConfig
	Window   WindowConfig
	Terminal TerminalConfig
}

// Default is what runs when no file is given.
func Default() *Config {
	return &Config{
		Field:    FieldConfig{Profile: "sphere", Seed: 1},
		Log:      LogConfig{Level: "info"},
		Window:   WindowConfig{Width: 1280, Height: 720, Title: "nodefield", MountID: "bg-canvas"},
		Terminal: TerminalConfig{FPS: 30},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := gcfg.FatalOnly(gcfg.ReadFileInto(cfg, path)); err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse reads settings from a string over the defaults.
func Parse(src string) (*Config, error) {
	cfg := Default()
	if err := gcfg.FatalOnly(gcfg.ReadStringInto(cfg, src)); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and the profile name.
func (c *Config) Validate() error {
	if _, err := profile.ByName(c.Field.Profile, c.Field.Seed); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.MountID == "" {
		return errors.New("window mount-id must not be empty")
	}
	if c.Terminal.FPS <= 0 || c.Terminal.FPS > 120 {
		return errors.Errorf("terminal fps must be in (0, 120], got %d", c.Terminal.FPS)
	}
	return nil
}

// Profile builds the selected profile.
func (c *Config) Profile() (profile.Profile, error) {
	return profile.ByName(c.Field.Profile, c.Field.Seed)
}
