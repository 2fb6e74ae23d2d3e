// Package config loads the game settings from a TOML file, writing an
// annotated default file on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// WindowConfig controls the game window.
type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
}

// AudioConfig controls volume levels.
type AudioConfig struct {
	MasterVolume float64 `toml:"master_volume"`
	MusicVolume  float64 `toml:"music_volume"`
	SfxVolume    float64 `toml:"sfx_volume"`
}

// GameConfig controls gameplay defaults.
type GameConfig struct {
	SaveDir         string `toml:"save_dir"`
	StartingCredits int    `toml:"starting_credits"`
}

// Config is the top-level TOML structure.
type Config struct {
	Window WindowConfig `toml:"window"`
	Audio  AudioConfig  `toml:"audio"`
	Game   GameConfig   `toml:"game"`
}

const defaultConfigTOML = `# Decker settings

[window]
width = 1280
height = 800
title = "Decker"
resizable = true

[audio]
master_volume = 1.0
music_volume = 0.8
sfx_volume = 0.8

[game]
save_dir = "saves"
starting_credits = 1000
`

// Load reads the config file at path, creating it with defaults when it
// does not exist.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return Config{}, fmt.Errorf("failed to create config directory: %w", err)
			}
		}
		if err := os.WriteFile(path, []byte(defaultConfigTOML), 0o644); err != nil {
			return Config{}, fmt.Errorf("failed to write default config: %w", err)
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}
