package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const barWidth = 30

var titleStyle = lipgloss.NewStyle().Bold(true)

// Text renders the report for a terminal: bordered tables and horizontal bar charts.
func (r *Report) Text() string {
	var b strings.Builder
	for i, blk := range r.blocks() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(blk.title))
		b.WriteString("\n")
		for _, l := range blk.lines {
			b.WriteString(l)
			b.WriteString("\n")
		}
		switch {
		case len(blk.bars) > 0:
			b.WriteString(drawBars(blk.bars))
		case blk.grid != nil:
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers(blk.grid.headers...).
				Rows(blk.grid.rows...)
			b.WriteString(t.String())
			b.WriteString("\n")
		}
		for _, l := range blk.foot {
			b.WriteString(strings.Trim(l, "*"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// drawBars draws one line per bar scaled to the largest value.
func drawBars(bars []bar) string {
	width := 0
	peak := 0.0
	for _, x := range bars {
		if n := lipgloss.Width(x.label); n > width {
			width = n
		}
		if x.value > peak {
			peak = x.value
		}
	}
	var b strings.Builder
	for _, x := range bars {
		n := 0
		if peak > 0 {
			n = int(x.value / peak * barWidth)
		}
		if n == 0 && x.value > 0 {
			n = 1
		}
		pad := width - lipgloss.Width(x.label)
		b.WriteString(fmt.Sprintf("%s%s  %s %s\n", x.label, strings.Repeat(" ", pad), strings.Repeat("█", n), x.text))
	}
	return b.String()
}
