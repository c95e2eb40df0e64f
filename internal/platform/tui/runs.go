package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-raid/internal/storage"
)

// maxRuns is how many recent runs the browser loads.
const maxRuns = 100

// VerifyFunc replays a recorded run and reports whether it still matches.
type VerifyFunc func(storage.RunRecord) error

// RunsKeyMap defines the key bindings for the run browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Verify key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Verify, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Verify, k.Delete, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Verify: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "verify"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing recorded runs.
type RunsModel struct {
	store    *storage.Store
	verify   VerifyFunc
	runs     []storage.RunRecord
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	status   string
	failed   bool
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates a run browser over store.
func NewRunsModel(store *storage.Store, verify VerifyFunc, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		store:  store,
		verify: verify,
		keys:   DefaultRunsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Seed", Width: 12},
		{Title: "Ticks", Width: 8},
		{Title: "Kills", Width: 6},
		{Title: "Deaths", Width: 6},
		{Title: "Resets", Width: 6},
		{Title: "Hash", Width: 16},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// loadRuns reloads the table from the store.
func (m *RunsModel) loadRuns() {
	if m.store == nil {
		m.runs = nil
		m.updateTableRows()
		return
	}

	runs, err := m.store.RecentRuns(maxRuns)
	if err != nil {
		m.runs = nil
		m.setStatus(err.Error(), true)
	} else {
		m.runs = runs
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%d", r.Deaths),
			fmt.Sprintf("%d", r.Resets),
			fmt.Sprintf("%016x", r.FinalHash),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

func (m *RunsModel) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

// selected returns the run under the cursor.
func (m *RunsModel) selected() (storage.RunRecord, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.RunRecord{}, false
	}
	return m.runs[i], true
}

// Init initializes the run browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Verify):
			m.verifySelected()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *RunsModel) verifySelected() {
	r, ok := m.selected()
	if !ok || m.verify == nil || m.store == nil {
		return
	}

	// The table rows carry no checkpoints.
	full, err := m.store.Run(r.ID)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if err := m.verify(*full); err != nil {
		m.setStatus(fmt.Sprintf("run %d: %v", r.ID, err), true)
		return
	}
	m.setStatus(fmt.Sprintf("run %d verified (%d checkpoints)", r.ID, len(full.Checkpoints)), false)
}

func (m *RunsModel) deleteSelected() {
	r, ok := m.selected()
	if !ok || m.store == nil {
		return
	}
	if err := m.store.DeleteRun(r.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("run %d deleted", r.ID), false)
	m.loadRuns()
}

// View renders the run browser.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RECORDED RUNS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		color := lipgloss.Color("42")
		if m.failed {
			color = lipgloss.Color("196")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(m.status))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RunsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nRecord one with: starraid simulate --record")
	}
	return m.table.View()
}

// centerText pads text so it is centred within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunRuns runs the run browser until the user quits.
func RunRuns(store *storage.Store, verify VerifyFunc, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(store, verify, width, height),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
