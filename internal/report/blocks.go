package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/txmedia-cli/internal/compare"
)

// grid is a table inside a block.
type grid struct {
	headers []string
	rows    [][]string
}

// block is one titled section shared by the Markdown and text renderers.
type block struct {
	title string
	lines []string
	grid  *grid
	// bars are (label, value) pairs drawn as a chart by the text renderer.
	bars []bar
	foot []string
}

type bar struct {
	label string
	value float64
	text  string
}

func (r *Report) blocks() []block {
	d := r.Dashboard
	a := d.Availability
	all := r.Section == "" || r.Section == SectionAll

	summary := block{title: "DATASET SUMMARY"}
	if d.Source != "" {
		summary.lines = append(summary.lines, "File: "+d.Source)
	}
	if r.Encoding != "" {
		summary.lines = append(summary.lines, "Encoding: "+r.Encoding)
	}
	summary.lines = append(summary.lines,
		fmt.Sprintf("Rows: %d", r.Rows),
		fmt.Sprintf("Columns: %d", len(a.Columns)),
	)
	if !a.NoData() {
		modes := make([]string, len(a.Modes))
		for i, m := range a.Modes {
			modes[i] = string(m)
		}
		summary.lines = append(summary.lines, "Modes: "+strings.Join(modes, ", "))
	}
	out := []block{summary}

	if all && a.NoData() {
		out = append(out, block{title: "NOTES", lines: []string{
			compare.NoDataMessage,
			"Available columns: " + strings.Join(a.Columns, ", "),
		}})
	}

	unavailable := func(title string) block {
		return block{title: title, lines: []string{
			compare.UnavailableMessage,
			"Available columns: " + strings.Join(a.Columns, ", "),
		}}
	}

	if r.includes(SectionSpeed) {
		switch {
		case d.Speed != nil:
			b := block{title: "SPEED (Gbps)", grid: &grid{headers: []string{"media_type", "speed_gbps"}}}
			for _, x := range d.Speed.Bars {
				b.grid.rows = append(b.grid.rows, []string{x.MediaType, x.Label})
				b.bars = append(b.bars, bar{label: x.MediaType, value: x.Gbps, text: x.Label})
			}
			fastest := "Fastest: " + d.Speed.FastestLabel()
			if d.Speed.Fastest != nil {
				fastest += fmt.Sprintf(" (%s)", d.Speed.Fastest.MediaType)
			}
			b.foot = []string{fastest}
			out = append(out, b)
		case !all:
			out = append(out, unavailable("SPEED (Gbps)"))
		}
	}

	if r.includes(SectionReliability) {
		switch {
		case a.Supports(compare.ModeReliability):
			b := block{title: "RELIABILITY VS INTERFERENCE", grid: &grid{headers: []string{"interference", "reliability", "media_type"}}}
			for _, p := range d.Scatter {
				b.grid.rows = append(b.grid.rows, []string{
					compare.FormatNumber(&p.Interference), compare.FormatNumber(&p.Reliability), p.Label,
				})
			}
			out = append(out, b)
		case !all:
			out = append(out, unavailable("RELIABILITY VS INTERFERENCE"))
		}
	}

	if r.includes(SectionCoverage) {
		switch {
		case d.Coverage != nil:
			b := block{title: "COVERAGE", grid: &grid{headers: []string{"media_type", "coverage"}}}
			for _, c := range d.Coverage {
				b.grid.rows = append(b.grid.rows, []string{c.MediaType, c.Coverage})
			}
			out = append(out, b)
		case !all:
			out = append(out, unavailable("COVERAGE"))
		}
	}

	if r.includes(SectionCost) {
		switch {
		case d.Cost != nil:
			out = append(out, costBlocks(d.Cost)...)
		case !all:
			out = append(out, unavailable("COST ANALYSIS"))
		}
	}

	if r.includes(SectionOverview) {
		o := d.Overview
		out = append(out, block{title: "DATA OVERVIEW", grid: &grid{headers: o.Columns, rows: o.Rows}})
	}
	return out
}

func costBlocks(c *compare.CostSummary) []block {
	var out []block
	if c.HasRelative {
		b := block{title: "RELATIVE COST (1-5)", grid: &grid{headers: []string{"media_type", "cost"}}}
		for _, p := range c.Relative {
			b.grid.rows = append(b.grid.rows, []string{p.MediaType, p.Label})
			b.bars = append(b.bars, bar{label: p.MediaType, value: p.Value, text: p.Label})
		}
		b.foot = []string{"Average Relative Cost: " + c.AvgRelativeLabel()}
		out = append(out, b)
	}
	if c.HasUSD {
		b := block{title: "COST (USD)", grid: &grid{headers: []string{"media_type", "cost_usd"}}}
		for _, p := range c.USD {
			b.grid.rows = append(b.grid.rows, []string{p.MediaType, p.Label})
			b.bars = append(b.bars, bar{label: p.MediaType, value: p.Value, text: p.Label})
		}
		b.foot = []string{"Average Cost (USD): " + c.AvgUSDLabel()}
		out = append(out, b)
	}
	if len(out) > 0 {
		last := &out[len(out)-1]
		last.foot = append(last.foot, "*"+c.Note+"*")
	}
	return out
}
