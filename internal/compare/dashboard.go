package compare

import "github.com/KaramelBytes/txmedia-cli/internal/dataset"

// Options tunes how views are built.
type Options struct {
	// Separator joins media types sharing a scatter point. Empty means DefaultSeparator.
	Separator string
}

// Dashboard holds every view of one table. Views whose columns are missing are nil.
type Dashboard struct {
	TableID      string        `json:"table_id"`
	Source       string        `json:"source"`
	Availability Availability  `json:"availability"`
	Speed        *SpeedView    `json:"speed,omitempty"`
	Scatter      []Point       `json:"scatter,omitempty"`
	Coverage     []CoverageRow `json:"coverage,omitempty"`
	Cost         *CostSummary  `json:"cost,omitempty"`
	Overview     Overview      `json:"overview"`
}

// Build computes all available views of t.
func Build(t *dataset.Table, opt Options) Dashboard {
	sep := opt.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	d := Dashboard{
		TableID:      t.ID(),
		Source:       t.Source(),
		Availability: Available(t),
		Overview:     DataOverview(t),
	}
	if d.Availability.Supports(ModeSpeed) {
		v := Speed(t)
		d.Speed = &v
	}
	if d.Availability.Supports(ModeReliability) {
		d.Scatter = Scatter(t, sep)
	}
	if d.Availability.Supports(ModeCoverage) {
		d.Coverage = Coverage(t)
	}
	if c, ok := Cost(t); ok {
		d.Cost = &c
	}
	return d
}
