package compare

import (
	"fmt"

	"github.com/KaramelBytes/txmedia-cli/internal/dataset"
)

// Bar is one media type in the speed comparison.
type Bar struct {
	MediaType string  `json:"media_type"`
	Gbps      float64 `json:"gbps"`
	Label     string  `json:"label"`
}

// SpeedView is the speed comparison in Gbps.
type SpeedView struct {
	Bars []Bar `json:"bars"`
	// Fastest is the largest speed, nil when no row has one.
	Fastest *Bar `json:"fastest,omitempty"`
}

// FastestLabel formats the Fastest metric.
func (v SpeedView) FastestLabel() string {
	if v.Fastest == nil {
		return "n/a"
	}
	return v.Fastest.Label
}

// GbpsLabel formats a speed the way bars are labelled.
func GbpsLabel(gbps float64) string { return fmt.Sprintf("%.2f Gbps", gbps) }

// Speed builds one bar per record with a known speed, in table order.
// Ties for the fastest keep the first record.
func Speed(t *dataset.Table) SpeedView {
	var v SpeedView
	for _, r := range t.Records() {
		if r.SpeedGbps == nil {
			continue
		}
		v.Bars = append(v.Bars, Bar{MediaType: r.MediaType, Gbps: *r.SpeedGbps, Label: GbpsLabel(*r.SpeedGbps)})
	}
	for i := range v.Bars {
		if v.Fastest == nil || v.Bars[i].Gbps > v.Fastest.Gbps {
			b := v.Bars[i]
			v.Fastest = &b
		}
	}
	return v
}
