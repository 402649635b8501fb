package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wayfarer/internal/registry"
	"github.com/vovakirdan/tui-wayfarer/internal/storage"
)

// Journey board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show world list sidebar
	sidebarWidth       = 22  // Width of world list sidebar
	maxJourneys        = 100 // Max journeys to load
)

// BoardKeyMap defines the key bindings for the journey board.
type BoardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextWorld key.Binding
	PrevWorld key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextWorld, k.PrevWorld, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextWorld, k.PrevWorld},
		{k.Back, k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev world"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next world"),
		),
		NextWorld: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next world"),
		),
		PrevWorld: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev world"),
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

// BoardModel is the Bubble Tea model for the journey board screen.
type BoardModel struct {
	worlds      []registry.WorldInfo // List of available worlds
	worldCursor int                  // Currently selected world index
	store       *storage.Store       // Journey storage
	journeys    []storage.JourneyEntry
	table       table.Model
	help        help.Model
	keys        BoardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show world list sidebar
}

// NewBoardModel creates a new journey board model.
func NewBoardModel(store *storage.Store, width, height int) BoardModel {
	keys := DefaultBoardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := BoardModel{
		worlds:      registry.List(),
		worldCursor: 0,
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	// Initialize table
	m.table = m.createTable()

	// Load journeys for first world
	if len(m.worlds) > 0 {
		m.loadJourneys(m.worlds[0].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *BoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Charted", Width: 8},
		{Title: "Steps", Width: 6},
		{Title: "Sites", Width: 6},
		{Title: "Mode", Width: 9},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	// Table styles
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

// loadJourneys loads journeys for the given world ID.
func (m *BoardModel) loadJourneys(worldID string) {
	if m.store == nil {
		m.journeys = nil
		m.updateTableRows()
		return
	}

	journeys, err := m.store.TopJourneys(worldID, maxJourneys)
	if err != nil {
		m.journeys = nil
	} else {
		m.journeys = journeys
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current journeys.
func (m *BoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.journeys))
	for i, j := range m.journeys {
		sites := fmt.Sprintf("%d", j.Resolved)
		if j.Completed {
			sites += " ✓"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", j.Nodes),
			fmt.Sprintf("%d", j.Steps),
			sites,
			j.Mode,
			j.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the journey board model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journey board.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.NextWorld), key.Matches(msg, m.keys.Right):
			if len(m.worlds) > 0 {
				m.worldCursor = (m.worldCursor + 1) % len(m.worlds)
				m.loadJourneys(m.worlds[m.worldCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevWorld), key.Matches(msg, m.keys.Left):
			if len(m.worlds) > 0 {
				m.worldCursor--
				if m.worldCursor < 0 {
					m.worldCursor = len(m.worlds) - 1
				}
				m.loadJourneys(m.worlds[m.worldCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
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

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journey board.
func (m BoardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "JOURNEY LOG"
	if len(m.worlds) > 0 {
		title = fmt.Sprintf("JOURNEY LOG - %s", m.worlds[m.worldCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		// Wide layout: sidebar + table
		b.WriteString(m.renderWideLayout())
	} else {
		// Narrow layout: world tabs + table
		b.WriteString(m.renderNarrowLayout())
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the board with a sidebar for world selection.
func (m BoardModel) renderWideLayout() string {
	// Sidebar (world list)
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Worlds\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, w := range m.worlds {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.worldCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := w.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableContent := m.renderTableContent()
	tableRendered := tableStyle.Render(tableContent)

	// Join horizontally
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the board with world tabs above the table.
func (m BoardModel) renderNarrowLayout() string {
	var b strings.Builder

	// World tabs (horizontal)
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.worlds))
	for i, w := range m.worlds {
		shortName := w.Title
		if len(shortName) > 12 {
			shortName = shortName[:11] + "."
		}
		if i == m.worldCursor {
			tabs[i] = activeTabStyle.Render(shortName)
		} else {
			tabs[i] = tabStyle.Render(" " + shortName + " ")
		}
	}

	// Wrap tabs if needed
	tabLine := strings.Join(tabs, " ")
	if len(tabLine) > m.width-4 {
		// Just show current world with arrows
		current := m.worlds[m.worldCursor].Title
		tabLine = fmt.Sprintf("< %s >", current)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BoardModel) renderTableContent() string {
	if len(m.journeys) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No journeys recorded yet.\nSet out on an expedition!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m BoardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BoardModel) IsQuitting() bool {
	return m.quitting
}

// RunBoard runs the journey board screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunBoard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewBoardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(BoardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
