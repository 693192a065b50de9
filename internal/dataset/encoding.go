package dataset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding decodes raw file bytes into UTF-8 text.
type Encoding struct {
	Name   string
	decode func([]byte) ([]byte, error)
}

// Decode converts b to UTF-8.
func (e Encoding) Decode(b []byte) ([]byte, error) { return e.decode(b) }

var errInvalidUTF8 = errors.New("invalid UTF-8 byte sequence")

var (
	// UTF8 accepts UTF-8 with or without a byte-order mark.
	UTF8 = Encoding{Name: "utf-8-sig", decode: decodeUTF8}
	// Latin1 is ISO-8859-1.
	Latin1 = Encoding{Name: "latin-1", decode: charmapDecoder(charmap.ISO8859_1)}
	// Windows1252 is the Western European Windows code page.
	Windows1252 = Encoding{Name: "windows-1252", decode: charmapDecoder(charmap.Windows1252)}
)

// DefaultEncodings is the order in which text files are decoded.
var DefaultEncodings = []Encoding{UTF8, Latin1}

func decodeUTF8(b []byte) ([]byte, error) {
	if !utf8.Valid(b) {
		return nil, errInvalidUTF8
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), b)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func charmapDecoder(cm *charmap.Charmap) func([]byte) ([]byte, error) {
	return func(b []byte) ([]byte, error) {
		return cm.NewDecoder().Bytes(b)
	}
}

// LookupEncoding resolves a configured encoding name.
func LookupEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8", "utf-8-sig", "utf8-sig":
		return UTF8, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return Latin1, nil
	case "windows-1252", "cp1252":
		return Windows1252, nil
	default:
		return Encoding{}, fmt.Errorf("unknown encoding %q (use utf-8-sig, latin-1 or windows-1252)", name)
	}
}

// decodeText tries each encoding in order and returns the first successful decode.
func decodeText(name string, b []byte, encodings []Encoding) ([]byte, string, error) {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}
	encErr := &EncodingError{Name: name}
	for _, enc := range encodings {
		out, err := enc.Decode(b)
		if err == nil {
			return out, enc.Name, nil
		}
		encErr.Attempts = append(encErr.Attempts, EncodingAttempt{Encoding: enc.Name, Err: err})
	}
	return nil, "", encErr
}
