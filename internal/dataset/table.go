// Package dataset loads transmission-media comparison tables and produces the canonical,
// read-only table every view consumes.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/KaramelBytes/txmedia-cli/internal/schema"
	"github.com/KaramelBytes/txmedia-cli/internal/speed"
)

// Derived column names added when the input has a speed column.
const (
	SpeedMbps = "speed_mbps"
	SpeedGbps = "speed_gbps"
)

// Options controls how a dataset file is read.
type Options struct {
	// Delimiter for CSV. If 0, '\t' for .tsv files and ',' otherwise.
	Delimiter rune
	// Sheet selects an XLSX sheet by name; empty means the first sheet.
	Sheet string
	// Encodings are attempted in order for text files. Empty means DefaultEncodings.
	Encodings []Encoding
	// Logger receives load diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Encodings: DefaultEncodings}
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Record is one row of the canonical table. Absent numbers are nil.
type Record struct {
	MediaType    string            `json:"media_type"`
	SpeedRaw     string            `json:"speed_raw,omitempty"`
	SpeedMbps    *float64          `json:"speed_mbps"`
	SpeedGbps    *float64          `json:"speed_gbps"`
	Cost         *float64          `json:"cost"`
	CostUSD      *float64          `json:"cost_usd"`
	Reliability  *float64          `json:"reliability"`
	Interference *float64          `json:"interference"`
	Coverage     string            `json:"coverage,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

func (r Record) clone() Record {
	out := r
	out.SpeedMbps = cloneNum(r.SpeedMbps)
	out.SpeedGbps = cloneNum(r.SpeedGbps)
	out.Cost = cloneNum(r.Cost)
	out.CostUSD = cloneNum(r.CostUSD)
	out.Reliability = cloneNum(r.Reliability)
	out.Interference = cloneNum(r.Interference)
	if r.Extra != nil {
		out.Extra = make(map[string]string, len(r.Extra))
		for k, v := range r.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

func cloneNum(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Table is the canonical table. It is built once and never modified; accessors return copies.
type Table struct {
	id       string
	source   string
	encoding string
	mapping  schema.Mapping
	records  []Record
}

// ID identifies this load in logs and exported output.
func (t *Table) ID() string { return t.id }

// Source is the base name of the file the table was loaded from.
func (t *Table) Source() string { return t.source }

// Encoding is the text encoding (or "xlsx") the file was read with.
func (t *Table) Encoding() string { return t.encoding }

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Mapping returns how input columns were mapped onto the schema.
func (t *Table) Mapping() schema.Mapping {
	cols := make([]schema.Column, len(t.mapping.Columns))
	copy(cols, t.mapping.Columns)
	return schema.Mapping{Columns: cols}
}

// Has reports whether a semantic or derived column is present.
func (t *Table) Has(name string) bool {
	switch name {
	case SpeedMbps, SpeedGbps:
		return t.mapping.Has(schema.Speed)
	default:
		return t.mapping.Has(name)
	}
}

// Columns lists column names in input order, followed by derived speed columns.
func (t *Table) Columns() []string {
	out := t.mapping.Names()
	if t.mapping.Has(schema.Speed) {
		out = append(out, SpeedMbps, SpeedGbps)
	}
	return out
}

// Records returns a copy of all records.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	for i, r := range t.records {
		out[i] = r.clone()
	}
	return out
}

// At returns a copy of record i.
func (t *Table) At(i int) Record { return t.records[i].clone() }

// MarshalJSON exports the table with its columns and records.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string         `json:"id"`
		Source   string         `json:"source"`
		Encoding string         `json:"encoding"`
		Columns  []string       `json:"columns"`
		Mapping  schema.Mapping `json:"mapping"`
		Records  []Record       `json:"records"`
	}{t.id, t.source, t.encoding, t.Columns(), t.mapping, t.records})
}

// Load reads a CSV, TSV or XLSX file and builds the canonical table.
func Load(path string, opt Options) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	raw, err := ReadBytes(path, data, opt)
	if err != nil {
		return nil, err
	}
	t := Build(raw, opt)
	t.source = filepath.Base(path)
	log := opt.logger()
	log.Info().
		Str("load_id", t.id).
		Str("source", t.source).
		Str("encoding", t.encoding).
		Int("rows", t.Len()).
		Strs("columns", t.Columns()).
		Msg("dataset loaded")
	return t, nil
}

// Build maps columns, applies the name and speed corrections and canonicalizes every row.
func Build(raw *Raw, opt Options) *Table {
	log := opt.logger()
	t := &Table{id: uuid.NewString()}
	if raw == nil {
		return t
	}
	t.encoding = raw.Encoding
	t.mapping = schema.Map(raw.Header)
	for _, c := range t.mapping.Columns {
		if c.Source == schema.SourcePosition {
			log.Debug().Str("column", c.Raw).Str("as", c.Name).Msg("column mapped by position")
		}
	}

	idx := map[string]int{}
	for _, name := range schema.Semantic {
		if i, ok := t.mapping.Index(name); ok {
			idx[name] = i
		}
	}
	extra := t.mapping.Extra()

	t.records = make([]Record, 0, len(raw.Rows))
	for n, row := range raw.Rows {
		cell := func(name string) (string, bool) {
			i, ok := idx[name]
			if !ok || i >= len(row) {
				return "", false
			}
			return row[i], true
		}

		var rec Record
		if v, ok := cell(schema.MediaType); ok {
			rec.MediaType = speed.FixMediaType(v)
		}
		if strings.TrimSpace(rec.MediaType) == "" {
			rec.MediaType = fmt.Sprintf("Unnamed #%d", n+1)
		}
		if v, ok := cell(schema.Speed); ok {
			rec.SpeedRaw = speed.FixSpeed(v)
			rec.SpeedMbps = speed.ParseMbps(rec.SpeedRaw)
			if rec.SpeedMbps != nil {
				g := *rec.SpeedMbps / 1000
				rec.SpeedGbps = &g
			} else if strings.TrimSpace(v) != "" {
				log.Debug().Int("row", n+1).Str("speed", v).Msg("speed not recoverable")
			}
		}
		if v, ok := cell(schema.Cost); ok {
			rec.Cost = toNumber(v)
		}
		if v, ok := cell(schema.CostUSD); ok {
			rec.CostUSD = toNumber(v)
		}
		if v, ok := cell(schema.Reliability); ok {
			rec.Reliability = toNumber(v)
		}
		if v, ok := cell(schema.Interference); ok {
			rec.Interference = toNumber(v)
		}
		if v, ok := cell(schema.Coverage); ok {
			rec.Coverage = strings.TrimSpace(v)
		}
		if v, ok := cell(schema.Notes); ok {
			rec.Notes = strings.TrimSpace(v)
		}
		for _, c := range extra {
			if c.Index >= len(row) {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string, len(extra))
			}
			name := c.Name
			if name == "" {
				name = fmt.Sprintf("column_%d", c.Index+1)
			}
			rec.Extra[name] = row[c.Index]
		}
		t.records = append(t.records, rec)
	}
	return t
}
