// flapper is a side-scrolling arcade game for the terminal: steer a falling
// circle through pillar gaps and eat the dots on the way.
//
// Usage:
//
//	flapper                  - Play (same as "flapper play")
//	flapper play             - Play the game
//	flapper runs             - Browse the run journal
//	flapper config show      - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set run journal path (default: ~/.flapper/runs.db)
//	--config <path>     - Load configuration from a YAML file
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapper",
	Short: "Flapper - a side-scrolling arcade game in your terminal",
	Long: `Flapper is a one-button arcade game. Keep the ball in the air, thread it
through the pillar gaps and eat the dots for points. Eat every dot of an
area for a bonus.

Available commands:
  play     - Play the game (default)
  runs     - Browse the run journal
  config   - Inspect configuration

Examples:
  flapper
  flapper play --seed 42
  flapper runs --recent
  flapper config show`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapper/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}
