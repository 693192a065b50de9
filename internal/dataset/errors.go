package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEncoding is matched by errors.Is when every configured text encoding failed.
var ErrEncoding = errors.New("no supported text encoding")

// ErrUnsupported indicates a file format no reader accepts.
var ErrUnsupported = errors.New("unsupported dataset format")

// EncodingAttempt records why one encoding was rejected.
type EncodingAttempt struct {
	Encoding string
	Err      error
}

// EncodingError reports a file that could not be decoded with any attempted encoding.
type EncodingError struct {
	Name     string
	Attempts []EncodingAttempt
}

func (e *EncodingError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Encoding, a.Err))
	}
	if e.Name != "" {
		return fmt.Sprintf("decode %s: %s (%s)", e.Name, ErrEncoding, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("decode: %s (%s)", ErrEncoding, strings.Join(parts, "; "))
}

func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

func (e *EncodingError) Unwrap() []error {
	out := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		out = append(out, a.Err)
	}
	return out
}
