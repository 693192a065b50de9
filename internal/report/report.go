// Package report renders the comparison views of a table as Markdown, JSON or
// plain text.
package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/txmedia-cli/internal/compare"
	"github.com/KaramelBytes/txmedia-cli/internal/dataset"
	"github.com/KaramelBytes/txmedia-cli/internal/utils"
)

// Section selects which views a report includes.
type Section string

const (
	SectionAll         Section = "all"
	SectionSpeed       Section = "speed"
	SectionReliability Section = "reliability"
	SectionCoverage    Section = "coverage"
	SectionCost        Section = "cost"
	SectionOverview    Section = "overview"
)

// Sections lists every accepted section name.
var Sections = []Section{SectionAll, SectionSpeed, SectionReliability, SectionCoverage, SectionCost, SectionOverview}

// ParseSection validates a section name.
func ParseSection(s string) (Section, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SectionAll, nil
	}
	for _, x := range Sections {
		if string(x) == s {
			return x, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (want one of %s)", s, joinSections())
}

func joinSections() string {
	names := make([]string, len(Sections))
	for i, s := range Sections {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Format is an output encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatText     Format = "text"
)

// ParseFormat validates a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown format %q (want markdown, json or text)", s)
}

// Report is a rendered-on-demand comparison of one table.
type Report struct {
	Encoding  string            `json:"encoding"`
	Rows      int               `json:"rows"`
	Section   Section           `json:"section"`
	Dashboard compare.Dashboard `json:"dashboard"`
}

// New builds the report for t restricted to sec.
func New(t *dataset.Table, opt compare.Options, sec Section) *Report {
	return &Report{
		Encoding:  t.Encoding(),
		Rows:      t.Len(),
		Section:   sec,
		Dashboard: compare.Build(t, opt),
	}
}

// Render encodes the report in format f.
func (r *Report) Render(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return r.JSON()
	case FormatText:
		return []byte(r.Text()), nil
	case FormatMarkdown, "":
		return []byte(r.Markdown()), nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// JSON returns the selected views as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	out := *r
	d := &out.Dashboard
	if !r.includes(SectionSpeed) {
		d.Speed = nil
	}
	if !r.includes(SectionReliability) {
		d.Scatter = nil
	}
	if !r.includes(SectionCoverage) {
		d.Coverage = nil
	}
	if !r.includes(SectionCost) {
		d.Cost = nil
	}
	if !r.includes(SectionOverview) {
		d.Overview = compare.Overview{Columns: d.Overview.Columns}
	}
	return utils.PrettyJSON(out)
}

func (r *Report) includes(s Section) bool {
	return r.Section == "" || r.Section == SectionAll || r.Section == s
}
