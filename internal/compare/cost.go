package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/KaramelBytes/txmedia-cli/internal/dataset"
	"github.com/KaramelBytes/txmedia-cli/internal/schema"
)

// CostPoint is one media type's cost on either scale.
type CostPoint struct {
	MediaType string  `json:"media_type"`
	Value     float64 `json:"value"`
	Label     string  `json:"label"`
}

// CostSummary is the cost analysis page. Relative holds the 1 to 5 scale and USD the
// dollar figures; each is present only when the table has that column.
type CostSummary struct {
	HasRelative bool        `json:"has_relative"`
	Relative    []CostPoint `json:"relative,omitempty"`
	AvgRelative *float64    `json:"avg_relative,omitempty"`

	HasUSD bool             `json:"has_usd"`
	USD    []CostPoint      `json:"usd,omitempty"`
	AvgUSD *decimal.Decimal `json:"avg_usd,omitempty"`

	Note string `json:"note"`
}

// AvgRelativeLabel formats the average relative cost metric.
func (c CostSummary) AvgRelativeLabel() string {
	if c.AvgRelative == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f/5", *c.AvgRelative)
}

// AvgUSDLabel formats the average USD cost metric.
func (c CostSummary) AvgUSDLabel() string {
	if c.AvgUSD == nil {
		return "n/a"
	}
	return "$" + c.AvgUSD.StringFixed(2)
}

// Cost summarizes relative and USD costs. Absent values are left out of the series
// and the averages. The second result is false when the table has neither column.
func Cost(t *dataset.Table) (CostSummary, bool) {
	s := CostSummary{
		HasRelative: t.Has(schema.Cost),
		HasUSD:      t.Has(schema.CostUSD),
		Note:        CostNote,
	}
	if !s.HasRelative && !s.HasUSD {
		return s, false
	}

	var relSum float64
	usdSum := decimal.Zero
	for _, r := range t.Records() {
		if s.HasRelative && r.Cost != nil {
			s.Relative = append(s.Relative, CostPoint{MediaType: r.MediaType, Value: *r.Cost, Label: fmt.Sprintf("%g", *r.Cost)})
			relSum += *r.Cost
		}
		if s.HasUSD && r.CostUSD != nil {
			d := decimal.NewFromFloat(*r.CostUSD)
			s.USD = append(s.USD, CostPoint{MediaType: r.MediaType, Value: *r.CostUSD, Label: "$" + d.StringFixed(2)})
			usdSum = usdSum.Add(d)
		}
	}
	if n := len(s.Relative); n > 0 {
		avg := relSum / float64(n)
		s.AvgRelative = &avg
	}
	if n := len(s.USD); n > 0 {
		avg := usdSum.Div(decimal.NewFromInt(int64(n)))
		s.AvgUSD = &avg
	}
	return s, true
}
