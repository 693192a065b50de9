package speed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKnownValues(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10 Gbps", 10000},
		{"100 Mbps", 100},
		{"0.5 Kbps", 0.0005},
		{"100 Mbps B 10 Gbps", 10000},
		{"100 Mbps - 10 Gbps", 10000},
		{"300 Mbps B 9.6 Gbps", 9600},
		{"1810 Gbps", 10000},
		{"1-10 Gbps", 10000},
		{"2810 Mbps", 10},
		{"108100 Mbps", 100},
		{"10820 Gbps", 20000},
		{"0.3850 Kbps", 0.05},
		{"~54 Mbps", 54},
		{"Up to 1 Gbps", 1000},
		{"1,000 Mbps", 1000},
		{"1 – 10 Gbps", 10000},
		{"1 â\u0080\u0093 10 Gbps", 10000},
		{"1 â€” 10 Gbps", 10000},
		{"250 kbps", 0.25},
	}
	for _, c := range cases {
		got, ok := Parse(c.in)
		require.True(t, ok, c.in)
		assert.InDelta(t, c.want, got, 1e-9, c.in)
	}
}

func TestParseMagnitudeInference(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		// unit-less single values
		{"9.5", 9500},
		{"10", 10},
		{"100", 100},
		{"1000", 1000},
		{"5000", 5000},
		// unit-less ranges
		{"1-5", 5000},
		{"10-50", 50},
		{"50-100", 100},
		{"100-400", 400},
		// single-unit ranges keep the magnitude threshold
		{"1-5 Mbps", 5000},
		{"0.5-2 Mbps", 2000},
		{"2-8 Mbps", 8000},
		{"20-50 Mbps", 50},
		{"1-10 Gbps", 10000},
		// unit written apart from the numbers
		{"10-20 (Gbps)", 20000},
	}
	for _, c := range cases {
		got, ok := Parse(c.in)
		require.True(t, ok, c.in)
		assert.InDelta(t, c.want, got, 1e-9, c.in)
	}
}

func TestParseAbsent(t *testing.T) {
	for _, in := range []string{"", "   ", "N/A", "varies", "~", "--"} {
		_, ok := Parse(in)
		assert.False(t, ok, "%q", in)
		assert.Nil(t, ParseMbps(in), "%q", in)
	}
}

func TestParseIsTotal(t *testing.T) {
	inputs := []string{
		"", "-", "B", "BBB", "Kbps", "kbps-", "1e309 Gbps", "99999999999999999999999999999999999999" +
			"9999999999999999999999999999999999999999999999999999999999999999999999999999999999999" +
			"9999999999999999999999999999999999999999999999999999999999999999999999999999999999999" +
			"9999999999999999999999999999999999999999999999999999999999999999999999999999999999999",
		"\xff\xfe", "1..2", ".5", "-5 Mbps", "NaN", "Inf Gbps", "up to", "0", "0-0",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			v, ok := Parse(in)
			if ok {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%q -> %v", in, v)
				assert.GreaterOrEqual(t, v, 0.0, "%q", in)
			}
		})
	}
}

func TestParseCorrectedLiteralMatchesItsFix(t *testing.T) {
	for bad, good := range speedFixes {
		a, okA := Parse(bad)
		b, okB := Parse(good)
		require.True(t, okA, bad)
		require.True(t, okB, good)
		assert.Equal(t, b, a, bad)
	}
}

func TestExplain(t *testing.T) {
	r := Explain("1810 Gbps")
	assert.True(t, r.Corrected)
	assert.Equal(t, "1-10Gbps", r.Cleaned)
	assert.Equal(t, RuleRange, r.Rule)
	require.NotNil(t, r.Mbps)
	assert.Equal(t, 10000.0, *r.Mbps)

	r = Explain("100 Mbps - 10 Gbps")
	assert.False(t, r.Corrected)
	assert.Equal(t, RuleRangeUnits, r.Rule)
	require.NotNil(t, r.Mbps)
	assert.Equal(t, 10000.0, *r.Mbps)

	r = Explain("  ")
	assert.Nil(t, r.Mbps)
	assert.Equal(t, RuleNone, r.Rule)

	r = Explain("7")
	assert.Equal(t, RuleMagnitude, r.Rule)
}

func TestFixMediaTypeExactOnly(t *testing.T) {
	assert.Equal(t, "LoRaWAN", FixMediaType("LoBOWAN"))
	assert.Equal(t, "Twisted Pair (Cat5/6)", FixMediaType("Twisted Pair (Cn15/6)"))
	assert.Equal(t, "WiFi (802.11ac/ax)", FixMediaType("WIFI (802.11ac/aa)"))
	assert.Equal(t, "LoBOWAN XYZ", FixMediaType("LoBOWAN XYZ"))
	assert.Equal(t, "lobowan", FixMediaType("lobowan"))
	assert.Equal(t, " LoBOWAN", FixMediaType(" LoBOWAN"))
	// a corrected name is not itself a key, so applying twice changes nothing
	assert.Equal(t, "LoRaWAN", FixMediaType(FixMediaType("LoBOWAN")))
}

func TestCorrectionsNeedTheExactLiteral(t *testing.T) {
	r := Explain("  1810 Gbps ")
	assert.True(t, r.Corrected)
	require.NotNil(t, r.Mbps)
	assert.Equal(t, 10000.0, *r.Mbps)

	for _, in := range []string{"1,810 Gbps", "~1810 Gbps", "1810Gbps", "1810 gbps"} {
		r := Explain(in)
		assert.False(t, r.Corrected, in)
		require.NotNil(t, r.Mbps, in)
		assert.Equal(t, 1810000.0, *r.Mbps, in)
	}
}

func TestFixSpeed(t *testing.T) {
	assert.Equal(t, "1-10 Gbps", FixSpeed("1810 Gbps"))
	assert.Equal(t, "1810 Gbps ", FixSpeed("1810 Gbps "))
	assert.Equal(t, "10 Gbps", FixSpeed("10 Gbps"))
}
