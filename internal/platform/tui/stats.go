package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// Stats screen layout constants
const (
	minWidthForSidebar = 80
	sidebarWidth       = 30
	maxResults         = 100
)

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel shows the counters and recent rounds per variant.
type StatsModel struct {
	games       []registry.GameInfo
	gameCursor  int
	store       *storage.Store
	stats       storage.Stats
	results     []storage.Result
	loadErr     error
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewStatsModel creates the stats screen.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	h := help.New()
	h.Width = width

	m := StatsModel{
		games:       registry.List(),
		store:       store,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()

	if len(m.games) > 0 {
		m.load(m.games[0].ID)
	}
	return m
}

func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Result", Width: 10},
		{Title: "Board", Width: 10},
		{Title: "Cleared", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the counters and recent results for one variant.
func (m *StatsModel) load(gameID string) {
	m.stats = storage.Stats{GameID: gameID}
	m.results = nil
	m.loadErr = nil

	if m.store != nil {
		st, err := m.store.Stats(gameID)
		if err != nil {
			m.loadErr = err
		} else {
			m.stats = st
		}
		res, err := m.store.RecentResults(gameID, maxResults)
		if err != nil {
			m.loadErr = err
		} else {
			m.results = res
		}
	}
	m.updateTableRows()
}

func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		outcome := r.Outcome
		if r.Cheated {
			outcome += "*"
		}
		rows[i] = table.Row{
			outcome,
			fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.Mines),
			fmt.Sprintf("%d", r.Revealed),
			formatDuration(r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders a round length as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.load(m.games[m.gameCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "STATISTICS"
	if len(m.games) > 0 {
		title = fmt.Sprintf("STATISTICS - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Played: %d   Won: %d   Win rate: %.0f%%",
		m.stats.Played, m.stats.Won, m.stats.WinRate())
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(centerText(m.boxed(m.renderTableContent()), m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m StatsModel) boxed(s string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(s)
}

// renderWideLayout renders the table with a variant list on the left.
func (m StatsModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = menuSelectedStyle
		}
		sidebar.WriteString(style.Render(cursor + g.Title))
		sidebar.WriteString("\n")
	}

	sidebarRendered := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1).
		Render(sidebar.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", m.boxed(m.renderTableContent()))
}

// renderTableContent renders the table or an empty message.
func (m StatsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Stats database unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Cannot read stats:\n" + m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No rounds recorded yet.\nClear a board to get started!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the stats screen.
// Returns true if user wants to go back, false if quitting.
func RunStats(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewStatsModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(StatsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
