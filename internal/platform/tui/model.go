package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// Options configure a game model.
type Options struct {
	SessionID string      // Stored with results; empty for local play
	ShowHelp  bool        // Show the key help footer
	AllowBack bool        // Esc/B leaves the board (SSH sessions return to the menu)
	Logger    *log.Logger // Storage errors; defaults to log.Default()
}

// roundReporter is implemented by games that can describe their board for
// the result history.
type roundReporter interface {
	Round() core.Round
}

// resizer is implemented by games that keep their state across a terminal
// resize. Other games are reset.
type resizer interface {
	Resize(w, h int)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one game. It records games played, games
// won and finished rounds in the store, which may be nil.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	now        func() time.Time

	roundStart     time.Time
	playedRecorded bool
	resultSaved    bool

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	keys := DefaultGameKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       keys,
		help:       h,
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
	m.screen = core.NewScreen(m.boardConfig().ScreenW, m.boardConfig().ScreenH)
	return m
}

// footerHeight is the number of rows reserved for the key help.
func (m Model) footerHeight() int {
	if !m.opts.ShowHelp {
		return 0
	}
	if m.help.ShowAll {
		rows := 0
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
		return rows + 1
	}
	return 2
}

// boardConfig is the runtime config handed to the game: the terminal minus
// the help footer.
func (m Model) boardConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-m.footerHeight(), 1)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.boardConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// relayout resizes the screen buffer and tells the game about it.
func (m *Model) relayout() {
	cfg := m.boardConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}
}

// handleKey queues game actions for the next tick. Quit, back and help act
// immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.abandon()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.abandon()
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		if m.opts.ShowHelp {
			m.help.ShowAll = !m.help.ShowAll
			m.relayout()
		}
		return m, nil
	}

	m.inputFrame.Set(m.keys.Action(msg))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.abandon()
		m.config.Seed = m.now().UnixNano()
		m.game.Reset(m.boardConfig())
		m.gameState = m.game.State()
		m.playedRecorded = false
		m.resultSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.record()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// record updates the store when a round starts and when it ends.
func (m *Model) record() {
	if m.gameState.Started && !m.playedRecorded {
		m.playedRecorded = true
		m.roundStart = m.now()
		if m.store != nil {
			if err := m.store.RecordPlayed(m.game.ID()); err != nil {
				m.logger.Warn("cannot record game", "game", m.game.ID(), "error", err)
			}
		}
	}

	if m.gameState.GameOver && !m.resultSaved {
		m.resultSaved = true
		outcome := storage.OutcomeLoss
		if m.gameState.Won {
			outcome = storage.OutcomeWin
			if m.store != nil {
				if err := m.store.RecordWon(m.game.ID()); err != nil {
					m.logger.Warn("cannot record win", "game", m.game.ID(), "error", err)
				}
			}
		}
		m.saveResult(outcome)
	}
}

// abandon records a started round that is being left unfinished.
func (m *Model) abandon() {
	if m.playedRecorded && !m.resultSaved {
		m.resultSaved = true
		m.saveResult(storage.OutcomeAbandoned)
	}
}

func (m *Model) saveResult(outcome string) {
	if m.store == nil {
		return
	}

	r := storage.Result{
		GameID:    m.game.ID(),
		SessionID: m.opts.SessionID,
		Outcome:   outcome,
		Revealed:  m.gameState.Score,
	}
	if !m.roundStart.IsZero() {
		r.Duration = m.now().Sub(m.roundStart)
	}
	if rr, ok := m.game.(roundReporter); ok {
		round := rr.Round()
		r.Width = round.Width
		r.Height = round.Height
		r.Mines = round.Mines
		r.Revealed = round.Revealed
		r.Cheated = round.Cheated
	}

	if _, err := m.store.SaveResult(r); err != nil {
		m.logger.Warn("cannot save result", "game", r.GameID, "outcome", outcome, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.opts.ShowHelp {
		out += "\n\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
