package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Raw is a header row plus data rows, each padded to the header width.
type Raw struct {
	Header   []string
	Rows     [][]string
	Encoding string
}

// Reader turns file contents into a Raw table.
type Reader interface {
	CanRead(filename string) bool
	Read(filename string, content []byte, opt Options) (*Raw, error)
}

var registry []Reader

// Register adds a reader implementation to the registry.
func Register(r Reader) {
	registry = append(registry, r)
}

// ReadBytes selects a reader based on filename and returns the raw table.
// Files without a recognized extension are read as CSV.
func ReadBytes(filename string, content []byte, opt Options) (*Raw, error) {
	for _, r := range registry {
		if r.CanRead(filename) {
			return r.Read(filename, content, opt)
		}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || ext == ".txt" {
		return csvReader{}.Read(filename, content, opt)
	}
	return nil, fmt.Errorf("%s: %w", ext, ErrUnsupported)
}

func init() {
	Register(csvReader{})
	Register(xlsxReader{})
}

// pad extends short rows to width and truncates long ones.
func pad(rec []string, width int) []string {
	row := make([]string, width)
	copy(row, rec)
	return row
}
