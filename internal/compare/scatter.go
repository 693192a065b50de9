package compare

import (
	"sort"
	"strings"

	"github.com/KaramelBytes/txmedia-cli/internal/dataset"
)

// DefaultSeparator joins the media types that share a scatter point.
const DefaultSeparator = ", "

// Point is one (interference, reliability) group of the scatter view.
type Point struct {
	Interference float64  `json:"interference"`
	Reliability  float64  `json:"reliability"`
	MediaTypes   []string `json:"media_types"`
	Label        string   `json:"label"`
}

// Scatter groups records by (interference, reliability). Records missing either value
// are omitted. Groups are sorted by interference, then reliability, ascending; media
// types keep table order inside a group and are joined with sep into the label.
func Scatter(t *dataset.Table, sep string) []Point {
	type key struct{ i, r float64 }
	groups := map[key]*Point{}
	var order []key
	for _, rec := range t.Records() {
		if rec.Interference == nil || rec.Reliability == nil {
			continue
		}
		k := key{*rec.Interference, *rec.Reliability}
		p, ok := groups[k]
		if !ok {
			p = &Point{Interference: k.i, Reliability: k.r}
			groups[k] = p
			order = append(order, k)
		}
		p.MediaTypes = append(p.MediaTypes, rec.MediaType)
	}
	sort.Slice(order, func(a, b int) bool {
		if order[a].i != order[b].i {
			return order[a].i < order[b].i
		}
		return order[a].r < order[b].r
	})
	out := make([]Point, 0, len(order))
	for _, k := range order {
		p := groups[k]
		p.Label = strings.Join(p.MediaTypes, sep)
		out = append(out, *p)
	}
	return out
}
