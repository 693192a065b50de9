// Package dashboard is the interactive terminal dashboard over a loaded table.
package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KaramelBytes/txmedia-cli/internal/compare"
)

// Model is the root bubbletea model. It holds precomputed views and never touches the table.
type Model struct {
	dash compare.Dashboard

	appIndex    int
	optionIndex int
	scroll      int

	width  int
	height int
}

// New creates a Model on the main page with the first available comparison selected.
func New(d compare.Dashboard) Model {
	return Model{dash: d}
}

// Init has nothing to load; all views are computed up front.
func (m Model) Init() tea.Cmd { return nil }

// AppMode returns the page being shown.
func (m Model) AppMode() compare.AppMode { return compare.AppModes[m.appIndex] }

// Option returns the selected comparison on the main page, or "" when none is available.
func (m Model) Option() compare.Mode {
	modes := m.dash.Availability.Modes
	if len(modes) == 0 {
		return ""
	}
	return modes[m.optionIndex]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll = clamp(m.scroll, 0, m.maxScroll())
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitUpper, KeyCtrlC:
		return m, tea.Quit
	case KeyTab:
		m.setApp((m.appIndex + 1) % len(compare.AppModes))
	case KeyShiftTab:
		m.setApp((m.appIndex + len(compare.AppModes) - 1) % len(compare.AppModes))
	case KeyMain:
		m.setApp(0)
	case KeyCost:
		m.setApp(1)
	case KeyOverview:
		m.setApp(2)
	case KeyRight, KeyL:
		if n := len(m.dash.Availability.Modes); n > 0 && m.AppMode() == compare.AppMain {
			m.optionIndex = (m.optionIndex + 1) % n
			m.scroll = 0
		}
	case KeyLeft, KeyH:
		if n := len(m.dash.Availability.Modes); n > 0 && m.AppMode() == compare.AppMain {
			m.optionIndex = (m.optionIndex + n - 1) % n
			m.scroll = 0
		}
	case KeyDown, KeyJ:
		m.scroll = clamp(m.scroll+1, 0, m.maxScroll())
	case KeyUp, KeyK:
		m.scroll = clamp(m.scroll-1, 0, m.maxScroll())
	}
	return m, nil
}

func (m *Model) setApp(i int) {
	if i != m.appIndex {
		m.scroll = 0
	}
	m.appIndex = i
}

// scrollable returns the number of rows in the current list view.
func (m Model) scrollable() int {
	switch m.AppMode() {
	case compare.AppOverview:
		return len(m.dash.Overview.Rows)
	case compare.AppMain:
		switch m.Option() {
		case compare.ModeCoverage:
			return len(m.dash.Coverage)
		case compare.ModeSpeed:
			if m.dash.Speed != nil {
				return len(m.dash.Speed.Bars)
			}
		case compare.ModeReliability:
			return len(m.dash.Scatter)
		}
	}
	return 0
}

func (m Model) maxScroll() int {
	n := m.scrollable() - m.visibleRows()
	if n < 0 {
		return 0
	}
	return n
}

// visibleRows is the list height left after header, tabs, dividers and footer.
func (m Model) visibleRows() int {
	const chrome = 10
	if m.height <= chrome {
		return 1
	}
	return m.height - chrome
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run starts the dashboard in the alternate screen and blocks until the user quits.
func Run(d compare.Dashboard) error {
	_, err := tea.NewProgram(New(d), tea.WithAltScreen()).Run()
	return err
}
