package report

import (
	"fmt"
	"strings"
)

// Markdown renders the report as bracketed sections with Markdown tables.
func (r *Report) Markdown() string {
	var b strings.Builder
	for i, blk := range r.blocks() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("[%s]\n", blk.title))
		for _, l := range blk.lines {
			b.WriteString(l)
			b.WriteString("\n")
		}
		if blk.grid != nil {
			writeMarkdownTable(&b, blk.grid)
		}
		for _, l := range blk.foot {
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeMarkdownTable(b *strings.Builder, g *grid) {
	b.WriteString("| ")
	for i, h := range g.headers {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(safeName(h))
	}
	b.WriteString(" |\n| ")
	for i := range g.headers {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString("---")
	}
	b.WriteString(" |\n")
	for _, row := range g.rows {
		b.WriteString("| ")
		for i := range g.headers {
			if i > 0 {
				b.WriteString(" | ")
			}
			val := ""
			if i < len(row) {
				val = row[i]
			}
			if len(val) > 80 {
				val = val[:77] + "..."
			}
			b.WriteString(safeVal(val))
		}
		b.WriteString(" |\n")
	}
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
