package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flapper/internal/config"
	"github.com/vovakirdan/tui-flapper/internal/core"
	"github.com/vovakirdan/tui-flapper/internal/games/flapper"
	"github.com/vovakirdan/tui-flapper/internal/platform/tui"
	"github.com/vovakirdan/tui-flapper/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Flapper.

Controls:
  Space/Up   - Flap (hold to start)
  P/Esc      - Pause
  R          - Restart at any time
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

After a crash, Space restarts once the game over screen has been shown for
a second. Every finished run is written to the run journal.

Examples:
  flapper play
  flapper play --seed 42
  flapper play --fps 30 --log-file ~/.flapper/flapper.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(settings.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.TickRate,
		Seed:     settings.Seed,
	}

	game := flapper.New()
	game.SetShowHelp(settings.Display.ShowHelp)

	opts := tui.Options{
		Logger:        logger,
		Colors:        settings.Display.Colors,
		ScreenshotDir: filepath.Join(config.ExpandHome("~/.flapper"), "screenshots"),
	}

	// Open the run journal
	store, err := storage.Open(settings.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		logger.Warn("could not open run journal", "error", err)
		// Continue without storage - game still works
	} else {
		opts.Journal = store
		defer store.Close()
	}

	logger.Info("starting", "tick_rate", cfg.TickRate, "seed", cfg.Seed, "database", settings.Database)
	if err := tui.Run(game, cfg, opts); err != nil {
		logger.Error("game loop failed", "error", err)
		return fmt.Errorf("error running game: %w", err)
	}
	logger.Info("exited", "high_score", game.State().HighScore)
	return nil
}
