// Package compare derives the comparison views of a canonical table: speed bars,
// the reliability/interference scatter, coverage rows, the cost summary and the
// data overview. Every view reads the table and never modifies it.
package compare

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/txmedia-cli/internal/dataset"
	"github.com/KaramelBytes/txmedia-cli/internal/schema"
)

// Mode is a comparison offered by the main dashboard.
type Mode string

const (
	ModeSpeed       Mode = "Speed"
	ModeReliability Mode = "Reliability vs Interference"
	ModeCoverage    Mode = "Coverage"
)

// AppMode is a top-level dashboard page.
type AppMode string

const (
	AppMain     AppMode = "Main Dashboard"
	AppCost     AppMode = "Cost Analysis"
	AppOverview AppMode = "Data Overview"
)

// AppModes lists the dashboard pages in menu order.
var AppModes = []AppMode{AppMain, AppCost, AppOverview}

// Messages shown when a view has nothing to draw.
const (
	NoDataMessage      = "No compatible data columns found. Please check your CSV file."
	UnavailableMessage = "Required data not available for this mode."
	CostNote           = "Note: Costs are approximate and may vary by vendor, region, and installation."
)

// Availability lists the comparison modes a table supports and the columns it has.
type Availability struct {
	Modes   []Mode   `json:"modes"`
	Columns []string `json:"columns"`
	Cost    bool     `json:"cost"`
}

// Available computes which modes the table supports. Modes keep menu order.
func Available(t *dataset.Table) Availability {
	a := Availability{Columns: t.Columns()}
	if t.Has(dataset.SpeedGbps) {
		a.Modes = append(a.Modes, ModeSpeed)
	}
	if t.Has(schema.Reliability) && t.Has(schema.Interference) {
		a.Modes = append(a.Modes, ModeReliability)
	}
	if t.Has(schema.Coverage) {
		a.Modes = append(a.Modes, ModeCoverage)
	}
	a.Cost = t.Has(schema.Cost) || t.Has(schema.CostUSD)
	return a
}

// NoData reports that no comparison mode applies.
func (a Availability) NoData() bool { return len(a.Modes) == 0 }

// Supports reports whether m is among the available modes.
func (a Availability) Supports(m Mode) bool {
	for _, x := range a.Modes {
		if x == m {
			return true
		}
	}
	return false
}

// SupportsApp reports whether a dashboard page can render. The main page always
// renders, falling back to the no-data message.
func (a Availability) SupportsApp(m AppMode) bool {
	switch m {
	case AppMain, AppOverview:
		return true
	case AppCost:
		return a.Cost
	}
	return false
}

// Describe renders the no-data state with the columns that were found.
func (a Availability) Describe() string {
	return fmt.Sprintf("%s\nAvailable columns: %s", NoDataMessage, strings.Join(a.Columns, ", "))
}

// ParseMode resolves a mode by its display name or a short alias.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "speed":
		return ModeSpeed, nil
	case "reliability", "interference", "reliability vs interference", "scatter":
		return ModeReliability, nil
	case "coverage":
		return ModeCoverage, nil
	}
	return "", fmt.Errorf("unknown comparison mode %q", s)
}
