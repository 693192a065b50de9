package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/KaramelBytes/txmedia-cli/internal/compare"
)

const title = "📡 Transmission Media Comparison Dashboard"

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTabs())
	sections = append(sections, DividerStyle.Render(strings.Repeat("─", m.width)))

	switch m.AppMode() {
	case compare.AppMain:
		sections = append(sections, m.renderMain())
	case compare.AppCost:
		sections = append(sections, m.renderCost())
	case compare.AppOverview:
		sections = append(sections, m.renderOverview())
	}

	sections = append(sections, DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	h := TitleStyle.Render(title)
	if m.dash.Source != "" {
		h += DimStyle.Render("  " + m.dash.Source)
	}
	return h
}

func (m Model) renderTabs() string {
	var parts []string
	for i, a := range compare.AppModes {
		label := fmt.Sprintf("%d %s", i+1, a)
		if i == m.appIndex {
			parts = append(parts, TabActiveStyle.Render(label))
		} else {
			parts = append(parts, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderMain() string {
	a := m.dash.Availability
	if a.NoData() {
		return ErrorStyle.Render(compare.NoDataMessage) + "\n" +
			DimStyle.Render("Available columns: "+strings.Join(a.Columns, ", "))
	}

	var opts []string
	for i, mode := range a.Modes {
		if i == m.optionIndex {
			opts = append(opts, TabActiveStyle.Render(string(mode)))
		} else {
			opts = append(opts, TabStyle.Render(string(mode)))
		}
	}
	lines := []string{HeaderStyle.Render("Comprehensive Comparison Dashboard"), lipgloss.JoinHorizontal(lipgloss.Top, opts...), ""}

	switch m.Option() {
	case compare.ModeSpeed:
		lines = append(lines, m.renderSpeed()...)
	case compare.ModeReliability:
		lines = append(lines, m.renderScatter()...)
	case compare.ModeCoverage:
		lines = append(lines, m.renderCoverage()...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSpeed() []string {
	v := m.dash.Speed
	if v == nil {
		return []string{ErrorStyle.Render(compare.UnavailableMessage)}
	}
	lines := []string{metric("Fastest", v.FastestLabel())}
	var bars []bar
	for _, b := range v.Bars {
		bars = append(bars, bar{label: b.MediaType, value: b.Gbps, text: b.Label})
	}
	return append(lines, m.window(renderBars(bars, m.barWidth(), BarStyle))...)
}

func (m Model) renderScatter() []string {
	lines := []string{DimStyle.Render("interference  reliability  media types")}
	var rows []string
	for _, p := range m.dash.Scatter {
		// marker size follows reliability
		size := int(p.Reliability)
		if size < 1 {
			size = 1
		}
		rows = append(rows, fmt.Sprintf("%-12s  %-11s  %s %s",
			compare.FormatNumber(&p.Interference),
			compare.FormatNumber(&p.Reliability),
			BarStyle.Render(strings.Repeat("●", size)),
			p.Label))
	}
	return append(lines, m.window(rows)...)
}

func (m Model) renderCoverage() []string {
	var rows [][]string
	for _, c := range m.dash.Coverage {
		rows = append(rows, []string{c.MediaType, c.Coverage})
	}
	return []string{renderTable([]string{"media_type", "coverage"}, m.windowRows(rows))}
}

func (m Model) renderCost() string {
	c := m.dash.Cost
	if !m.dash.Availability.SupportsApp(compare.AppCost) || c == nil {
		return ErrorStyle.Render(compare.UnavailableMessage) + "\n" +
			DimStyle.Render("Available columns: "+strings.Join(m.dash.Availability.Columns, ", "))
	}
	lines := []string{HeaderStyle.Render("Cost Analysis")}
	if c.HasRelative {
		lines = append(lines, "", HeaderStyle.Render("Relative Cost (1-5)"), metric("Average Relative Cost", c.AvgRelativeLabel()))
		var bars []bar
		for _, p := range c.Relative {
			bars = append(bars, bar{label: p.MediaType, value: p.Value, text: p.Label})
		}
		lines = append(lines, renderBars(bars, m.barWidth(), CostBarStyle)...)
	}
	if c.HasUSD {
		lines = append(lines, "", HeaderStyle.Render("Cost (USD)"), metric("Average Cost (USD)", c.AvgUSDLabel()))
		var bars []bar
		for _, p := range c.USD {
			bars = append(bars, bar{label: p.MediaType, value: p.Value, text: p.Label})
		}
		lines = append(lines, renderBars(bars, m.barWidth(), CostBarStyle)...)
	}
	lines = append(lines, "", DimStyle.Render(c.Note))
	return strings.Join(lines, "\n")
}

func (m Model) renderOverview() string {
	o := m.dash.Overview
	head := HeaderStyle.Render("Data Overview") + DimStyle.Render(fmt.Sprintf("  %d rows", len(o.Rows)))
	return head + "\n" + renderTable(o.Columns, m.windowRows(o.Rows))
}

func (m Model) renderFooter() string {
	parts := []string{
		FooterKeyStyle.Render("Tab/1-3") + FooterDescStyle.Render(" Page"),
	}
	if m.AppMode() == compare.AppMain && len(m.dash.Availability.Modes) > 1 {
		parts = append(parts, FooterKeyStyle.Render("←→")+FooterDescStyle.Render(" Compare"))
	}
	if m.scrollable() > m.visibleRows() {
		parts = append(parts, FooterKeyStyle.Render("j/k")+FooterDescStyle.Render(" Scroll"))
	}
	parts = append(parts, FooterKeyStyle.Render("q")+FooterDescStyle.Render(" Quit"))
	return strings.Join(parts, "  ")
}

func (m Model) window(lines []string) []string {
	start := clamp(m.scroll, 0, len(lines))
	end := clamp(start+m.visibleRows(), start, len(lines))
	return lines[start:end]
}

func (m Model) windowRows(rows [][]string) [][]string {
	start := clamp(m.scroll, 0, len(rows))
	end := clamp(start+m.visibleRows(), start, len(rows))
	return rows[start:end]
}

func (m Model) barWidth() int {
	w := m.width / 2
	if w < 10 {
		return 10
	}
	return w
}

type bar struct {
	label string
	value float64
	text  string
}

func renderBars(bars []bar, width int, style lipgloss.Style) []string {
	labelW := 0
	peak := 0.0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.label))
		peak = max(peak, b.value)
	}
	out := make([]string, 0, len(bars))
	for _, b := range bars {
		n := 0
		if peak > 0 {
			n = int(b.value / peak * float64(width))
		}
		if n == 0 && b.value > 0 {
			n = 1
		}
		out = append(out, padRight(b.label, labelW)+"  "+style.Render(strings.Repeat("█", n))+" "+b.text)
	}
	return out
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(DividerStyle).
		Headers(headers...).
		Rows(rows...).
		String()
}

func metric(label, value string) string {
	return MetricLabelStyle.Render(label+": ") + MetricValueStyle.Render(value)
}

func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
