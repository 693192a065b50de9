package compare

import "github.com/KaramelBytes/txmedia-cli/internal/dataset"

// CoverageRow pairs a media type with its coverage text.
type CoverageRow struct {
	MediaType string `json:"media_type"`
	Coverage  string `json:"coverage"`
}

// Coverage lists every record's coverage in table order; empty cells stay empty.
func Coverage(t *dataset.Table) []CoverageRow {
	recs := t.Records()
	out := make([]CoverageRow, len(recs))
	for i, r := range recs {
		out[i] = CoverageRow{MediaType: r.MediaType, Coverage: r.Coverage}
	}
	return out
}
