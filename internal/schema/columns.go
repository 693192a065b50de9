package schema

import "strings"

// Semantic column names of the canonical table.
const (
	MediaType    = "media_type"
	Speed        = "speed"
	Cost         = "cost"
	CostUSD      = "cost_usd"
	Reliability  = "reliability"
	Interference = "interference"
	Coverage     = "coverage"
	Notes        = "notes"
)

// Semantic lists every semantic name in schema order.
var Semantic = []string{MediaType, Speed, Cost, CostUSD, Reliability, Interference, Coverage, Notes}

type rule struct {
	keywords []string
	target   string
}

// rules are evaluated top to bottom; the first rule with a keyword contained in the name wins.
var rules = []rule{
	{keywords: []string{"media", "type"}, target: MediaType},
	{keywords: []string{"speed", "mbps", "gbps"}, target: Speed},
	{keywords: []string{"cost_usd"}, target: CostUSD},
	{keywords: []string{"cost"}, target: Cost},
	{keywords: []string{"reliability"}, target: Reliability},
	{keywords: []string{"distance", "coverage"}, target: Coverage},
	{keywords: []string{"interference"}, target: Interference},
	{keywords: []string{"notes", "use"}, target: Notes},
}

// positional is indexed by column position: a semantic name still missing after keyword
// matching is taken from the unmapped column at its index.
var positional = []string{MediaType, Speed, Cost, Reliability, Interference, Coverage}

// Source records how a column received its name.
type Source string

const (
	SourceNone     Source = ""
	SourceKeyword  Source = "keyword"
	SourcePosition Source = "position"
)

// Column is one input column and the name it was mapped to.
type Column struct {
	Index    int    `json:"index"`
	Raw      string `json:"raw"`
	Name     string `json:"name"`
	Semantic bool   `json:"semantic"`
	Source   Source `json:"source,omitempty"`
}

// Mapping is the result of normalizing a header row. Columns keep input order.
type Mapping struct {
	Columns []Column `json:"columns"`
}

// Clean trims and lower-cases a header name.
func Clean(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Match returns the semantic name selected by the keyword rules, or "" when none applies.
func Match(clean string) string {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(clean, kw) {
				return r.target
			}
		}
	}
	return ""
}

// Map normalizes headers onto the semantic schema. On keyword conflicts the later
// column wins and the earlier one falls back to its cleaned name.
func Map(headers []string) Mapping {
	cols := make([]Column, len(headers))
	owner := map[string]int{}
	for i, h := range headers {
		clean := Clean(h)
		cols[i] = Column{Index: i, Raw: h, Name: clean}
		target := Match(clean)
		if target == "" {
			continue
		}
		if prev, ok := owner[target]; ok {
			cols[prev].Name = Clean(cols[prev].Raw)
			cols[prev].Semantic = false
			cols[prev].Source = SourceNone
		}
		owner[target] = i
		cols[i].Name = target
		cols[i].Semantic = true
		cols[i].Source = SourceKeyword
	}

	for idx, name := range positional {
		if _, ok := owner[name]; ok {
			continue
		}
		if idx >= len(cols) || cols[idx].Semantic {
			continue
		}
		owner[name] = idx
		cols[idx].Name = name
		cols[idx].Semantic = true
		cols[idx].Source = SourcePosition
	}

	// Rows need a name: without a media_type column the first unmapped column stands in.
	if _, ok := owner[MediaType]; !ok {
		for i := range cols {
			if cols[i].Semantic {
				continue
			}
			cols[i].Name = MediaType
			cols[i].Semantic = true
			cols[i].Source = SourcePosition
			break
		}
	}
	return Mapping{Columns: cols}
}

// Index returns the input position of a semantic column.
func (m Mapping) Index(name string) (int, bool) {
	for _, c := range m.Columns {
		if c.Semantic && c.Name == name {
			return c.Index, true
		}
	}
	return -1, false
}

// Has reports whether a semantic column is present.
func (m Mapping) Has(name string) bool {
	_, ok := m.Index(name)
	return ok
}

// Names returns the mapped names in input order.
func (m Mapping) Names() []string {
	out := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		out[i] = c.Name
	}
	return out
}

// Extra returns the columns that kept their own names.
func (m Mapping) Extra() []Column {
	var out []Column
	for _, c := range m.Columns {
		if !c.Semantic {
			out = append(out, c)
		}
	}
	return out
}
