package compare

import (
	"strconv"

	"github.com/KaramelBytes/txmedia-cli/internal/dataset"
	"github.com/KaramelBytes/txmedia-cli/internal/schema"
)

// Overview is the full canonical table as display cells.
type Overview struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// DataOverview renders every record as one row of cells, one per table column.
func DataOverview(t *dataset.Table) Overview {
	o := Overview{Columns: t.Columns()}
	for _, r := range t.Records() {
		row := make([]string, len(o.Columns))
		for i, c := range o.Columns {
			row[i] = Cell(r, c)
		}
		o.Rows = append(o.Rows, row)
	}
	return o
}

// Cell returns the display text of one column of a record. Absent numbers are "".
func Cell(r dataset.Record, column string) string {
	switch column {
	case schema.MediaType:
		return r.MediaType
	case schema.Speed:
		return r.SpeedRaw
	case dataset.SpeedMbps:
		return FormatNumber(r.SpeedMbps)
	case dataset.SpeedGbps:
		return FormatNumber(r.SpeedGbps)
	case schema.Cost:
		return FormatNumber(r.Cost)
	case schema.CostUSD:
		return FormatNumber(r.CostUSD)
	case schema.Reliability:
		return FormatNumber(r.Reliability)
	case schema.Interference:
		return FormatNumber(r.Interference)
	case schema.Coverage:
		return r.Coverage
	case schema.Notes:
		return r.Notes
	}
	return r.Extra[column]
}

// FormatNumber prints the shortest exact form of v, or "" when absent.
func FormatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
