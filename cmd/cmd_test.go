package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mediaCSV = "Media Type,Speed,Cost (1-5),Cost_USD,Reliability (1-5),Interference (1-5),Max Distance / Coverage\n" +
	"Twisted Pair (Cn15/6),100 Mbps B 10 Gbps,1,0.5,3,4,100 m\n" +
	"Fiber Optic,10 Gbps,4,2.75,5,1,40 km\n" +
	"LoBOWAN,0.3850 Kbps,1,5,3,3,15 km\n"

// resetFlags clears flag values and Changed state that persist across invocations.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCmd executes the root command in an isolated HOME and returns stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeDataset(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestCompareMarkdown(t *testing.T) {
	home := isolate(t)
	p := writeDataset(t, home, "media.csv", mediaCSV)

	out, err := runCmd(t, "compare", p)
	require.NoError(t, err)
	assert.Contains(t, out, "[DATASET SUMMARY]")
	assert.Contains(t, out, "| Twisted Pair (Cat5/6) | 10.00 Gbps |")
	assert.Contains(t, out, "| LoRaWAN | 0.00 Gbps |")
	assert.Contains(t, out, "Fastest: 10.00 Gbps (Twisted Pair (Cat5/6))")
	assert.Contains(t, out, "Average Cost (USD): $2.75")
}

func TestCompareUsesConfiguredDataset(t *testing.T) {
	home := isolate(t)
	p := writeDataset(t, home, "media.csv", mediaCSV)
	_, err := runCmd(t, "config", "set", "dataset_path", p)
	require.NoError(t, err)
	_, err = runCmd(t, "config", "set", "default_mode", "coverage")
	require.NoError(t, err)

	out, err := runCmd(t, "compare")
	require.NoError(t, err)
	assert.Contains(t, out, "[COVERAGE]")
	assert.NotContains(t, out, "[SPEED (Gbps)]")

	shown, err := runCmd(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, shown, "dataset_path: "+p)
	assert.Contains(t, shown, "default_mode: coverage")
}

func TestCompareJSONToFile(t *testing.T) {
	home := isolate(t)
	p := writeDataset(t, home, "media.csv", mediaCSV)
	dst := filepath.Join(home, "out", "report.json")

	out, err := runCmd(t, "compare", p, "--mode", "speed", "--format", "json", "-o", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Wrote json report for media.csv")

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "speed", got["section"])
}

func TestCompareErrors(t *testing.T) {
	home := isolate(t)
	p := writeDataset(t, home, "media.csv", mediaCSV)

	_, err := runCmd(t, "compare", p, "--mode", "latency")
	assert.Error(t, err)
	_, err = runCmd(t, "compare", p, "--format", "yaml")
	assert.Error(t, err)
	_, err = runCmd(t, "compare", filepath.Join(home, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = runCmd(t, "compare", p, "--delimiter", "#")
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	home := isolate(t)
	p := writeDataset(t, home, "media.csv", mediaCSV)

	out, err := runCmd(t, "inspect", p)
	require.NoError(t, err)
	assert.Contains(t, out, "Encoding: utf-8-sig")
	assert.Contains(t, out, `- "Cost_USD" → cost_usd (keyword)`)
	assert.Contains(t, out, "Missing: notes")
	assert.Contains(t, out, `- LoRaWAN: "0.3-50 Kbps" → 0.05 Mbps`)
	assert.Contains(t, out, "- Reliability vs Interference")

	out, err = runCmd(t, "inspect", p, "--json")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "media.csv", got["source"])
}

func TestParseSpeed(t *testing.T) {
	isolate(t)
	out, err := runCmd(t, "parse-speed", "10 Gbps", "varies", "1810 Gbps")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"10 Gbps\t10000 Mbps", "varies\tabsent", "1810 Gbps\t10000 Mbps"}, lines)

	out, err = runCmd(t, "parse-speed", "--explain", "0.5 Kbps")
	require.NoError(t, err)
	assert.Contains(t, out, "0.5 Kbps\t0.0005 Mbps")
	assert.Contains(t, out, "rule: kbps")
}

func TestCompareBatch(t *testing.T) {
	home := isolate(t)
	writeDataset(t, home, "b.csv", mediaCSV)
	writeDataset(t, home, "a.csv", "Vendor\nAcme\n")

	out, err := runCmd(t, "compare-batch", filepath.Join(home, "*.csv"), "--parallel", "2", "--quiet")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "✓ "+filepath.Join(home, "a.csv")+": 1 rows"), lines[0])
	assert.Contains(t, lines[0], "modes: none")
	assert.Contains(t, lines[1], "fastest 10.00 Gbps")
	assert.Contains(t, lines[1], "avg cost 2.0/5")
}

func TestCompareBatchFailures(t *testing.T) {
	home := isolate(t)
	writeDataset(t, home, "a.csv", mediaCSV)
	writeDataset(t, home, "b.pdf", "%PDF")

	_, err := runCmd(t, "compare-batch", filepath.Join(home, "*"))
	require.Error(t, err)

	out, err := runCmd(t, "compare-batch", filepath.Join(home, "*"), "--keep-going", "--json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.NotEmpty(t, got[1]["error"])

	_, err = runCmd(t, "compare-batch", filepath.Join(home, "*.xlsx"))
	assert.Error(t, err)
}

func TestConfigSetRejectsInvalid(t *testing.T) {
	isolate(t)
	_, err := runCmd(t, "config", "set", "output_format", "pdf")
	assert.Error(t, err)
	_, err = runCmd(t, "config", "set", "nope", "x")
	assert.Error(t, err)

	out, err := runCmd(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "output_format: markdown")
}
