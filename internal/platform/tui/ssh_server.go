// Package tui provides terminal UI components including SSH server support via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.starfall/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int

	// Game is the base configuration. Each session applies its own
	// difficulty preset on a copy.
	Game config.StarfallConfig

	// Difficulty is the preset preselected in the difficulty menu.
	Difficulty config.DifficultyPreset

	// Logger receives server and session events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.starfall/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Game:        config.DefaultStarfallConfig(),
		Difficulty:  config.DifficultyNormal,
	}
}

// SSHServer wraps a Wish SSH server for Starfall.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New(os.Stderr, "starfall-ssh", log.InfoLevel)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = config.DifficultyNormal
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".starfall", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create runtime config from PTY size
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewSessionModel(SessionOptions{
		Store:      s.store,
		Runtime:    cfg,
		Game:       s.config.Game,
		Difficulty: s.config.Difficulty,
		Logger:     s.logger.With("user", sshSession.User()),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the screen a session is on.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenDifficulty
	screenScoreboard
	screenGame
)

// SessionOptions configure a SessionModel.
type SessionOptions struct {
	Store      *storage.Store
	Runtime    core.RuntimeConfig
	Game       config.StarfallConfig
	Difficulty config.DifficultyPreset
	Logger     *log.Logger
}

// SessionModel manages the full session flow:
// menu -> difficulty -> game -> menu, with the scoreboard off the menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	base       config.StarfallConfig
	difficulty config.DifficultyPreset
	logger     *log.Logger

	screen     sessionScreen
	menu       MenuModel
	picker     DifficultyModel
	scoreboard ScoreboardModel
	gameModel  Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	return SessionModel{
		store:      opts.Store,
		config:     opts.Runtime,
		base:       opts.Game,
		difficulty: opts.Difficulty,
		logger:     logger,
		screen:     screenMenu,
		menu:       NewMenuModel(opts.Store, opts.Runtime, starfall.ID),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenDifficulty:
		return m.updateDifficulty(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

// Sub-screens return tea.Quit when they are done. The session swallows
// those and moves to the next screen instead.

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuChoicePlay:
		m.screen = screenDifficulty
		m.picker = NewDifficultyModel(m.config.ScreenW, m.config.ScreenH, m.difficulty)
		return m, m.picker.Init()
	case MenuChoiceScoreboard:
		m.screen = screenScoreboard
		m.scoreboard = NewScoreboardModel(m.store, starfall.ID, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateDifficulty handles the preset picker.
func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	if picker, ok := next.(DifficultyModel); ok {
		m.picker = picker
	}

	switch {
	case m.picker.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.picker.WantsBack():
		return m.toMenu()
	case m.picker.Selected() != "":
		return m.startGame(m.picker.Selected())
	}

	return m, cmd
}

// updateScoreboard handles the scoreboard screen.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(Model); ok {
		m.gameModel = gm
	}

	switch {
	case m.gameModel.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.gameModel.BackToMenu():
		return m.toMenu()
	}

	return m, cmd
}

// startGame builds a game for the chosen preset. Each session works on its
// own copy of the base config.
func (m SessionModel) startGame(preset config.DifficultyPreset) (tea.Model, tea.Cmd) {
	m.difficulty = preset

	cfg := m.base
	cfg.Platforms = append([]config.PlatformConfig(nil), m.base.Platforms...)
	config.ApplyStarfallPreset(&cfg, preset)

	runtime := m.config
	runtime.Seed = time.Now().UnixNano()

	m.gameModel = NewModel(starfall.NewWithConfig(cfg), m.store, runtime, Options{
		Difficulty: string(preset),
		Logger:     m.logger,
	})
	m.screen = screenGame
	m.logger.Info("round started", "difficulty", preset)
	return m, m.gameModel.Init()
}

// toMenu returns to a fresh menu, which reloads the best score.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.gameModel = Model{}
	m.menu = NewMenuModel(m.store, m.config, starfall.ID)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenDifficulty:
		return m.picker.View()
	case screenScoreboard:
		return m.scoreboard.View()
	case screenGame:
		return m.gameModel.View()
	default:
		return m.menu.View()
	}
}
