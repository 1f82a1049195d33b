package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

// holdTicks is how long a jump press counts as held. Terminals report no
// key releases, so auto-repeat refreshes the latch while the key is down.
const holdTicks = 6

// Game is the contract between the platform loop and a game simulation.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	RunSummary() core.RunSummary
}

// Journal receives finished runs.
type Journal interface {
	SaveRun(gameID string, run core.RunSummary) (int64, error)
}

// Options configures the game model.
type Options struct {
	Journal       Journal     // Nil disables the run journal
	Logger        *log.Logger // Nil discards log output
	Colors        bool
	ScreenshotDir string // Empty uses ~/.flapper/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	journal    Journal
	logger     *log.Logger
	keys       KeyMap
	config     core.RuntimeConfig
	colors     bool
	shotDir    string
	inputFrame core.InputFrame
	heldTicks  int
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the run has been journaled for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".flapper", "screenshots")
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		journal:    opts.Journal,
		logger:     logger,
		keys:       DefaultKeyMap(),
		config:     cfg,
		colors:     opts.Colors,
		shotDir:    shotDir,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("game stopped", "game", m.game.ID(), "score", m.gameState.Score, "high_score", m.gameState.HighScore)
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionJump) {
		m.heldTicks = holdTicks
	}

	return m, nil
}

// handleResize only resizes the cell buffer; the world keeps its own
// coordinates, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.heldTicks > 0 {
		m.inputFrame.Set(core.ActionJumpHeld)
		m.heldTicks--
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Restarted {
		m.logger.Info("restart", "score", prev.Score)
	}
	if m.gameState.Phase != prev.Phase {
		m.logger.Info("phase", "from", prev.Phase, "to", m.gameState.Phase)
	}
	if m.gameState.Paused != prev.Paused {
		m.logger.Debug("pause", "paused", m.gameState.Paused)
	}

	// Journal the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}
	if !m.gameState.GameOver {
		m.runSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun writes the finished run to the journal. Failures are logged and
// the game continues.
func (m *Model) saveRun() {
	if m.journal == nil {
		return
	}
	run := m.game.RunSummary()
	id, err := m.journal.SaveRun(m.game.ID(), run)
	if err != nil {
		m.logger.Error("cannot journal run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "score", run.Score, "markers", run.Markers, "ticks", run.Ticks)
}

// saveScreenshot saves the current screen to a text file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.colors)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
