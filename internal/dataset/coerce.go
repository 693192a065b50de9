package dataset

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// toNumber coerces a cell to a number. Anything unparsable, including NaN and
// infinities, is absent.
func toNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
