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

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/session"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.sweeper/host_key.
	HostKeyPath string

	// DBPath is the path to the stats database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the game loop rate for every session.
	TickRate int

	// Sweeper holds board presets and display options for new games.
	Sweeper config.SweeperConfig

	// LogLevel filters server and engine logs.
	LogLevel log.Level
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.sweeper/stats.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultConfig().TickRate,
		Sweeper:     config.DefaultConfig(),
		LogLevel:    log.InfoLevel,
	}
}

// sessionIDKey stores the session ID in the SSH context.
type sessionIDKey struct{}

// SSHServer wraps a Wish SSH server. Every connection gets its own menu and
// boards; the shared store and session tracker are safe for concurrent use.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	sessions *session.Tracker
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sweeper-ssh",
		Level:           cfg.LogLevel,
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open stats database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		sessions: session.NewTracker(),
		logger:   logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".sweeper", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// The last middleware runs first, so sessions are tracked before the
	// Bubble Tea handler looks them up.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	)
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

	id, _ := sshSession.Context().Value(sessionIDKey{}).(session.ID)

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewSessionModel(SessionDeps{
		Store:    s.store,
		Tracker:  s.sessions,
		Sweeper:  s.config.Sweeper,
		Logger:   s.logger.With("session", id.Short()),
		ID:       id,
		Username: sshSession.User(),
	}, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionMiddleware registers the connection with the tracker and logs its
// lifetime.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		info := s.sessions.Add(sshSession.User(), sshSession.RemoteAddr().String())
		sshSession.Context().SetValue(sessionIDKey{}, info.ID)

		s.logger.Info("session started",
			"session", info.ID.Short(),
			"user", info.User,
			"remote", info.Remote,
			"active", s.sessions.Count(),
		)

		next(sshSession)

		d, _ := s.sessions.Remove(info.ID)
		s.logger.Info("session ended",
			"session", info.ID.Short(),
			"user", info.User,
			"duration", d.Round(time.Second),
			"active", s.sessions.Count(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...", "active", s.sessions.Count())
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Sessions lists the connected players.
func (s *SSHServer) Sessions() []session.Info {
	return s.sessions.List()
}

// configurable games accept the loaded sweeper configuration.
type configurable interface {
	Configure(cfg config.SweeperConfig)
}

// logged games accept a logger for their engine.
type logged interface {
	SetLogger(l *log.Logger)
}

// SessionDeps are the shared services a session model uses.
type SessionDeps struct {
	Store    *storage.Store
	Tracker  *session.Tracker
	Sweeper  config.SweeperConfig
	Logger   *log.Logger
	ID       session.ID
	Username string
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewStats
)

// SessionModel manages one connection's flow: menu -> game or stats -> menu.
type SessionModel struct {
	deps     SessionDeps
	config   core.RuntimeConfig
	view     sessionView
	menu     MenuModel
	game     *Model
	stats    *StatsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps SessionDeps, cfg core.RuntimeConfig) SessionModel {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	return SessionModel{
		deps:   deps,
		config: cfg,
		menu:   NewMenuModel(deps.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewStats:
		return m.updateStats(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stale tick from a finished game.
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsStats():
		stats := NewStatsModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		m.stats = &stats
		m.view = viewStats
		return m, stats.Init()

	case m.menu.Selected() != nil:
		// The menu's tea.Quit is dropped; the session switches views instead.
		return m.startGame(m.menu.Selected().GameID)
	}
	return m, cmd
}

func (m SessionModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		m.deps.Logger.Error("cannot create game", "game", gameID, "error", err)
		m.menu = NewMenuModel(m.deps.Store, m.config)
		return m, nil
	}
	if c, ok := game.(configurable); ok {
		c.Configure(m.deps.Sweeper)
	}
	if l, ok := game.(logged); ok {
		l.SetLogger(m.deps.Logger.With("game", gameID))
	}
	if m.deps.Tracker != nil {
		m.deps.Tracker.SetGame(m.deps.ID, gameID)
	}
	m.deps.Logger.Debug("game started", "game", gameID, "user", m.deps.Username)

	gm := NewModel(game, m.deps.Store, m.config, Options{
		SessionID: string(m.deps.ID),
		ShowHelp:  m.deps.Sweeper.Display.ShowHelp,
		AllowBack: true,
		Logger:    m.deps.Logger,
	})
	m.game = &gm
	m.view = viewGame
	return m, gm.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		if m.deps.Tracker != nil {
			m.deps.Tracker.SetGame(m.deps.ID, "")
		}
		m.game = nil
		m.view = viewMenu
		m.menu = NewMenuModel(m.deps.Store, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newModel, cmd := m.stats.Update(msg)
	if sm, ok := newModel.(StatsModel); ok {
		m.stats = &sm
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.stats.IsGoingBack() {
		m.stats = nil
		m.view = viewMenu
		m.menu = NewMenuModel(m.deps.Store, m.config)
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewStats:
		return m.stats.View()
	}
	return m.menu.View()
}
