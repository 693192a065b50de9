package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/txmedia-cli/internal/schema"
)

const mediaCSV = "Media Type,Speed,Cost (1-5),Cost_USD,Reliability (1-5),Interference (1-5),Max Distance / Coverage,Notes / Use Cases\n" +
	"Twisted Pair (Cn15/6),100 Mbps B 10 Gbps,1,0.5,3,4,100 m,LAN\n" +
	"Fiber Optic,\"10 Gbps\",4,2.75,5,1,40 km,Backbone\n" +
	"WIFI (802.11ac/aa),300 Mbps B 9.6 Gbps,2,n/a,3,4,50 m,Home\n" +
	"LoBOWAN,0.3850 Kbps,1,5,3,3,15 km,IoT\n" +
	"Satellite,varies,5,,2,3,Global,Remote\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestLoadCSVCanonicalizes(t *testing.T) {
	p := writeFile(t, "media.csv", append([]byte("\xef\xbb\xbf"), mediaCSV...))
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "media.csv", tbl.Source())
	assert.Equal(t, "utf-8-sig", tbl.Encoding())
	assert.NotEmpty(t, tbl.ID())
	require.Equal(t, 5, tbl.Len())
	assert.Equal(t, []string{
		schema.MediaType, schema.Speed, schema.Cost, schema.CostUSD, schema.Reliability,
		schema.Interference, schema.Coverage, schema.Notes, SpeedMbps, SpeedGbps,
	}, tbl.Columns())

	recs := tbl.Records()
	assert.Equal(t, "Twisted Pair (Cat5/6)", recs[0].MediaType)
	assert.Equal(t, "100 Mbps - 10 Gbps", recs[0].SpeedRaw)
	require.NotNil(t, recs[0].SpeedMbps)
	assert.Equal(t, 10000.0, *recs[0].SpeedMbps)
	assert.Equal(t, 10.0, *recs[0].SpeedGbps)

	assert.Equal(t, 10000.0, *recs[1].SpeedMbps)
	assert.Equal(t, 2.75, *recs[1].CostUSD)
	assert.Equal(t, "40 km", recs[1].Coverage)
	assert.Equal(t, "Backbone", recs[1].Notes)

	assert.Equal(t, "WiFi (802.11ac/ax)", recs[2].MediaType)
	assert.Nil(t, recs[2].CostUSD)
	assert.InDelta(t, 9600.0, *recs[2].SpeedMbps, 1e-9)

	assert.Equal(t, "LoRaWAN", recs[3].MediaType)
	assert.Equal(t, "0.3-50 Kbps", recs[3].SpeedRaw)
	assert.InDelta(t, 0.05, *recs[3].SpeedMbps, 1e-12)

	assert.Nil(t, recs[4].SpeedMbps)
	assert.Nil(t, recs[4].SpeedGbps)
	assert.Nil(t, recs[4].CostUSD)
	assert.Equal(t, 5.0, *recs[4].Cost)
}

func TestSpeedGbpsIsMbpsOverThousand(t *testing.T) {
	p := writeFile(t, "media.csv", []byte(mediaCSV))
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	for _, r := range tbl.Records() {
		if r.SpeedMbps == nil {
			assert.Nil(t, r.SpeedGbps)
			continue
		}
		require.NotNil(t, r.SpeedGbps)
		assert.Equal(t, *r.SpeedMbps/1000, *r.SpeedGbps)
	}
}

func TestLoadLatin1Fallback(t *testing.T) {
	// 0xE9 is "é" in Latin-1 and invalid as a lone UTF-8 byte.
	content := []byte("Media,Speed\nR\xe9seau c\xe2ble,100 Mbps\n")
	p := writeFile(t, "latin.csv", content)
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "latin-1", tbl.Encoding())
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "Réseau câble", tbl.At(0).MediaType)
	assert.Equal(t, 100.0, *tbl.At(0).SpeedMbps)
}

func TestLoadEncodingExhausted(t *testing.T) {
	p := writeFile(t, "bad.csv", []byte("Media\n\xff\xfe\n"))
	opt := DefaultOptions()
	opt.Encodings = []Encoding{UTF8}
	_, err := Load(p, opt)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEncoding))
	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	require.Len(t, encErr.Attempts, 1)
	assert.Equal(t, "utf-8-sig", encErr.Attempts[0].Encoding)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadUnsupportedExtension(t *testing.T) {
	p := writeFile(t, "media.pdf", []byte("%PDF"))
	_, err := Load(p, DefaultOptions())
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestLoadTSVAndPositionalFallback(t *testing.T) {
	content := "Technology\tRate\tPrice\tRel\tNoise\tReach\n" +
		"Coax\t1-10\t2\t4\t2\t500 m\n" +
		"\t\t\t\t\t\n" +
		"Short\n"
	p := writeFile(t, "media.tsv", []byte(content))
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	r := tbl.At(0)
	assert.Equal(t, "Coax", r.MediaType)
	// a unit-less range topping out at 10 is read as Mbps
	assert.Equal(t, 10.0, *r.SpeedMbps)
	assert.Equal(t, 4.0, *r.Reliability)
	assert.Equal(t, 2.0, *r.Interference)
	assert.Equal(t, "500 m", r.Coverage)

	assert.Equal(t, "Unnamed #2", tbl.At(1).MediaType)
	assert.Nil(t, tbl.At(1).SpeedMbps)

	short := tbl.At(2)
	assert.Equal(t, "Short", short.MediaType)
	assert.Nil(t, short.Cost)
}

func TestLoadNamesRowsFromFreeColumn(t *testing.T) {
	p := writeFile(t, "media.csv", []byte("Speed (Mbps),Label\n100,Coax\n250,\n"))
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Coax", tbl.At(0).MediaType)
	assert.Equal(t, 100.0, *tbl.At(0).SpeedMbps)
	assert.Equal(t, "Unnamed #2", tbl.At(1).MediaType)
}

func TestLoadEmptyFile(t *testing.T) {
	p := writeFile(t, "empty.csv", nil)
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Columns())
	assert.False(t, tbl.Has(SpeedMbps))
}

func TestLoadKeepsUnmappedColumns(t *testing.T) {
	content := "Media,Speed,Reliability,Vendor\nFiber,10 Gbps,5,Acme\n"
	p := writeFile(t, "media.csv", []byte(content))
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"vendor": "Acme"}, tbl.At(0).Extra)
	assert.False(t, tbl.Has(schema.Interference))
	assert.True(t, tbl.Has(SpeedGbps))
}

func TestRecordsAreCopies(t *testing.T) {
	p := writeFile(t, "media.csv", []byte(mediaCSV))
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)

	recs := tbl.Records()
	*recs[0].SpeedMbps = 1
	recs[0].MediaType = "changed"
	assert.Equal(t, 10000.0, *tbl.At(0).SpeedMbps)
	assert.Equal(t, "Twisted Pair (Cat5/6)", tbl.At(0).MediaType)
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Media"))
	require.NoError(t, f.SetSheetRow("Media", "A1", &[]interface{}{"Media Type", "Speed", "Reliability", "Interference"}))
	require.NoError(t, f.SetSheetRow("Media", "A2", &[]interface{}{"Fiber", "1810 Gbps", 5, 1}))
	require.NoError(t, f.SetSheetRow("Media", "A3", &[]interface{}{"Coax", "1 Gbps", 4, 2}))
	p := filepath.Join(t.TempDir(), "media.xlsx")
	require.NoError(t, f.SaveAs(p))

	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "xlsx", tbl.Encoding())
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, 10000.0, *tbl.At(0).SpeedMbps)
	assert.Equal(t, 5.0, *tbl.At(0).Reliability)

	opt := DefaultOptions()
	opt.Sheet = "media"
	_, err = Load(p, opt)
	require.NoError(t, err)

	opt.Sheet = "Missing"
	_, err = Load(p, opt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available sheets: Media")
}

func TestLookupEncoding(t *testing.T) {
	for _, name := range []string{"utf-8", "UTF-8-SIG", "latin-1", "ISO-8859-1", "cp1252"} {
		_, err := LookupEncoding(name)
		assert.NoError(t, err, name)
	}
	_, err := LookupEncoding("ebcdic")
	assert.Error(t, err)
}
