// Package config provides YAML-based application configuration for the
// flapper binary: tick rate, seed, run journal location, logging and display.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppConfig contains all user-tunable settings. Game geometry and physics
// are compile-time constants of the game package and are not configurable.
type AppConfig struct {
	TickRate int           `yaml:"tick_rate"`
	Seed     int64         `yaml:"seed"`
	Database string        `yaml:"database"`
	Log      LogConfig     `yaml:"log"`
	Display  DisplayConfig `yaml:"display"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	File  string `yaml:"file"`  // Empty discards log output
	Level string `yaml:"level"` // debug, info, warn or error
}

// DisplayConfig controls terminal rendering.
type DisplayConfig struct {
	Colors   bool `yaml:"colors"`
	ShowHelp bool `yaml:"show_help"`
}

// Normalize replaces zero or invalid values with defaults.
func (c *AppConfig) Normalize() {
	def := DefaultAppConfig()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Database == "" {
		c.Database = def.Database
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		c.Log.Level = strings.ToLower(c.Log.Level)
	default:
		c.Log.Level = def.Log.Level
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
