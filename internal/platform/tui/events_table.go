package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/beltsim/internal/sim"
	"github.com/vovakirdan/beltsim/internal/storage"
)

var (
	browserTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	browserMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	browserTableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// EventsBrowser is a scrollable table over one archived run's event log.
type EventsBrowser struct {
	run      storage.RunEntry
	table    table.Model
	quitting bool
}

// NewEventsBrowser creates a browser for the given run and its events.
func NewEventsBrowser(run storage.RunEntry, events []sim.Event, height int) EventsBrowser {
	columns := []table.Column{
		{Title: "Time (s)", Width: 10},
		{Title: "Asteroid 1", Width: 12},
		{Title: "Asteroid 2", Width: 12},
	}

	rows := make([]table.Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, table.Row{
			fmt.Sprintf("%.1f", e.Time),
			fmt.Sprintf("%d", e.IDLow),
			fmt.Sprintf("%d", e.IDHigh),
		})
	}

	tableHeight := height - 6 // Leave room for title, meta and help lines
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return EventsBrowser{run: run, table: t}
}

// Init implements tea.Model.
func (m EventsBrowser) Init() tea.Cmd {
	return nil
}

// Update handles navigation and quit keys.
func (m EventsBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h := msg.Height - 6
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run header and the event table.
func (m EventsBrowser) View() string {
	if m.quitting {
		return ""
	}

	title := browserTitleStyle.Render(fmt.Sprintf("Run %d — %s", m.run.ID, m.run.Source))
	meta := browserMetaStyle.Render(fmt.Sprintf(
		"duration %.1fs, step %.1fs, %d bodies, %d collisions",
		m.run.Duration, m.run.TimeStep, m.run.BodyCount, m.run.EventCount,
	))
	help := browserMetaStyle.Render("↑/↓ scroll · q quit")

	return title + "\n" + meta + "\n\n" + browserTableStyle.Render(m.table.View()) + "\n" + help
}

// RunEventsBrowser opens the archived-run event browser.
func RunEventsBrowser(run storage.RunEntry, events []sim.Event, screenH int) error {
	model := NewEventsBrowser(run, events, screenH)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
