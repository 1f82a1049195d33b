package config

import (
	_ "embed"
)

//go:embed defaults/flapper.yaml
var defaultAppYAML []byte

// DefaultAppConfig returns the built-in configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		TickRate: 60,
		Seed:     0,
		Database: "~/.flapper/runs.db",
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
		Display: DisplayConfig{
			Colors:   true,
			ShowHelp: true,
		},
	}
}
