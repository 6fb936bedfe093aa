package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

// Options tune a game Model beyond the runtime config.
type Options struct {
	// Difficulty is recorded with every saved score.
	Difficulty string

	// Logger receives round and storage events. Nil discards them.
	Logger *log.Logger

	// HoldWindow overrides DefaultHoldWindow.
	HoldWindow time.Duration

	// Now is the clock used for key hold tracking. Nil means time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	difficulty string
	logger     *log.Logger
	keyMapper  *KeyMapper
	hold       *HoldTracker
	now        func() time.Time
	gameState  core.GameState
	loop       uint64
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		difficulty: opts.Difficulty,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		hold:       NewHoldTracker(opts.HoldWindow),
		now:        now,
		loop:       nextLoopID(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "difficulty", m.difficulty)

	// Start the tick loop
	return tickCmd(m.config.TickInterval(), m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Leaving is only offered while nothing is in motion
	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.hold.Press(action, m.now())
	return m, nil
}

// handleResize processes window resize events. The round keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.hold.Frame(m.now()))
	m.gameState = result.State

	if result.RoundOver {
		m.saveRound(result.State)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickInterval(), m.loop)
}

// saveRound stores a finished round. Empty rounds are not recorded.
func (m Model) saveRound(st core.GameState) {
	m.logger.Info("round over",
		"game", m.game.ID(),
		"round", st.Round,
		"score", st.Score,
		"waves", st.Waves,
	)
	if st.Score <= 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.difficulty, st.Score, st.Waves); err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".starfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the runtime config, including the latest terminal size.
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// RunResult reports how a game screen was left.
type RunResult struct {
	BackToMenu bool
	Config     core.RuntimeConfig
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (RunResult, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{Config: cfg}, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return RunResult{Config: cfg}, nil
	}
	return RunResult{BackToMenu: m.BackToMenu(), Config: m.Config()}, nil
}
