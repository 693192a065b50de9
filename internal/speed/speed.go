// Package speed turns free-text link speed descriptions into megabits per second.
//
// Inputs come from hand-maintained spreadsheets: ranges ("1-10 Gbps"), bare numbers,
// approximations ("~54 Mbps"), "up to" phrases, a capital B typed in place of a dash and
// dashes mangled by a UTF-8/Latin-1 mix-up. When no unit is written the unit is inferred
// from magnitude, which can misclassify values near the 10/100/1000 thresholds.
package speed

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Rule names the pipeline stage that produced a value.
type Rule string

const (
	RuleNone       Rule = ""
	RuleKbps       Rule = "kbps"
	RuleRangeUnits Rule = "range-units"
	RuleRange      Rule = "range"
	RuleGbps       Rule = "gbps"
	RuleMbps       Rule = "mbps"
	RuleMagnitude  Rule = "magnitude"
)

var (
	upToRe   = regexp.MustCompile(`(?i)up\s*to`)
	numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	kbpsRe   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)kbps`)
	gbpsRe   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)gbps`)
	mbpsRe   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)mbps`)
	unitRe   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)(gbps|mbps|kbps)?`)
)

// dashes repairs en dash, em dash and minus sign, both as proper runes and as the
// mojibake left by decoding their UTF-8 bytes as Latin-1 or Windows-1252.
var dashes = strings.NewReplacer(
	"â\u0080\u0093", "-",
	"â\u0080\u0094", "-",
	"â\u0088\u0092", "-",
	"â€“", "-",
	"â€”", "-",
	"âˆ’", "-",
	"–", "-",
	"—", "-",
	"−", "-",
)

var noise = strings.NewReplacer("~", "", ",", "", "B", "-")

// Result explains how a speed string was canonicalized.
type Result struct {
	Input     string   `json:"input"`
	Cleaned   string   `json:"cleaned"`
	Corrected bool     `json:"corrected"`
	Rule      Rule     `json:"rule,omitempty"`
	Mbps      *float64 `json:"mbps"`
}

// Parse returns the speed in Mbps. ok is false when no number could be recovered.
// The result is always finite and non-negative.
func Parse(text string) (mbps float64, ok bool) {
	r := Explain(text)
	if r.Mbps == nil {
		return 0, false
	}
	return *r.Mbps, true
}

// ParseMbps is Parse with an absent result reported as nil.
func ParseMbps(text string) *float64 {
	return Explain(text).Mbps
}

// Explain runs the full pipeline and reports the intermediate text and the rule used.
func Explain(text string) Result {
	res := Result{Input: text}
	if strings.TrimSpace(text) == "" {
		return res
	}
	s := strings.TrimSpace(text)
	if good, ok := speedFixes[s]; ok {
		s = good
		res.Corrected = true
	}
	s = clean(s)
	res.Cleaned = s
	if v, rule, ok := canonical(s); ok {
		res.Mbps = &v
		res.Rule = rule
	}
	return res
}

func clean(text string) string {
	s := noise.Replace(strings.TrimSpace(text))
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = upToRe.ReplaceAllString(s, "")
	return dashes.Replace(s)
}

func canonical(s string) (float64, Rule, bool) {
	lower := strings.ToLower(s)

	if strings.Contains(lower, "kbps") {
		if m := kbpsRe.FindStringSubmatch(s); m != nil {
			if v, ok := toFloat(m[1]); ok {
				return v / 1000, RuleKbps, true
			}
		}
	}

	if strings.Contains(s, "-") {
		if v, rule, ok := rangeMbps(s, lower); ok {
			return v, rule, true
		}
	}

	if m := gbpsRe.FindStringSubmatch(s); m != nil {
		if v, ok := toFloat(m[1]); ok {
			return v * 1000, RuleGbps, true
		}
	}
	if m := mbpsRe.FindStringSubmatch(s); m != nil {
		if v, ok := toFloat(m[1]); ok {
			return v, RuleMbps, true
		}
	}

	top, ok := maxNumber(numberRe.FindAllString(s, -1))
	if !ok {
		return 0, RuleNone, false
	}
	switch {
	case top < 10:
		return top * 1000, RuleMagnitude, true
	case top > 1000:
		return top, RuleMagnitude, true
	default:
		return top, RuleMagnitude, true
	}
}

// rangeMbps returns the upper bound of a range. When the range mixes units each number is
// converted on its own, a bare number taking the unit that follows it. Otherwise the
// maximum number is scaled by the keyword and magnitude thresholds.
func rangeMbps(s, lower string) (float64, Rule, bool) {
	var (
		vals  []float64
		units []string
	)
	distinct := map[string]struct{}{}
	for _, m := range unitRe.FindAllStringSubmatch(s, -1) {
		v, ok := toFloat(m[1])
		if !ok {
			continue
		}
		u := strings.ToLower(m[2])
		if u != "" {
			distinct[u] = struct{}{}
		}
		vals = append(vals, v)
		units = append(units, u)
	}
	if len(vals) == 0 {
		return 0, RuleNone, false
	}

	if len(distinct) > 1 {
		next := ""
		for i := len(units) - 1; i >= 0; i-- {
			if units[i] == "" {
				units[i] = next
			} else {
				next = units[i]
			}
		}
		last := ""
		for i := range units {
			if units[i] == "" {
				units[i] = last
			} else {
				last = units[i]
			}
		}
		top := 0.0
		for i, v := range vals {
			if mv := toMbps(v, units[i]); mv > top {
				top = mv
			}
		}
		return top, RuleRangeUnits, true
	}

	top := vals[0]
	for _, v := range vals[1:] {
		if v > top {
			top = v
		}
	}
	switch {
	case strings.Contains(lower, "gbps") || top < 10:
		return top * 1000, RuleRange, true
	case strings.Contains(lower, "mbps") || top > 100:
		return top, RuleRange, true
	default:
		return top, RuleRange, true
	}
}

func toMbps(v float64, unit string) float64 {
	switch unit {
	case "gbps":
		return v * 1000
	case "kbps":
		return v / 1000
	default:
		return v
	}
}

func maxNumber(raw []string) (float64, bool) {
	top, found := 0.0, false
	for _, r := range raw {
		v, ok := toFloat(r)
		if !ok {
			continue
		}
		if !found || v > top {
			top, found = v, true
		}
	}
	return top, found
}

func toFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
