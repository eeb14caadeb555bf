package catalog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleYAML = `
guides:
  - name: V35-4
    radial: 2400
    axial: 1600
    mx: 30
  - name: V28-3
    radial: 1200
    axial: 800
    mzs: 12.5
    mzd: 11
`

func TestParseYAML(t *testing.T) {
	items, err := ParseYAML(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "V28-3", items[0].Name)
	assert.Equal(t, 1200.0, *items[0].Radial)
	assert.Equal(t, 12.5, *items[0].Mzs)
	assert.Nil(t, items[0].Mx)
	assert.Nil(t, items[0].My)
	assert.Equal(t, "V35-4", items[1].Name)
	assert.Equal(t, 30.0, *items[1].Mx)
}

func TestParseYAMLRejectsDuplicates(t *testing.T) {
	_, err := ParseYAML(strings.NewReader("guides:\n  - name: A\n  - name: A\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = ParseYAML(strings.NewReader("guides:\n  - radial: 5\n"))
	assert.ErrorContains(t, err, "without name")
}

func TestXLSXRoundTrip(t *testing.T) {
	want := []Item{
		{Name: "A-1", Radial: Value(100), Axial: Value(50)},
		{Name: "B-2", Mx: Value(1.5), My: Value(2), Mzs: Value(3), Mzd: Value(4)},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, want))

	got, err := ParseXLSX(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseXLSXHeaderOrder(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Axial", "NAME", "radial"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"10,5", "Z", ""}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"7", "", "1"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	items, err := ParseXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Z", items[0].Name)
	assert.Equal(t, 10.5, *items[0].Axial)
	assert.Nil(t, items[0].Radial)
}

func TestParseXLSXNoNameColumn(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A1", &[]interface{}{"radial"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	_, err := ParseXLSX(&buf)
	assert.ErrorContains(t, err, "name column")
}

func TestFileProvider(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "guides.yaml")
	require.NoError(t, os.WriteFile(yml, []byte(sampleYAML), 0o600))
	items, err := (&File{Path: yml}).Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	xlsx := filepath.Join(dir, "guides.xlsx")
	out, err := os.Create(xlsx)
	require.NoError(t, err)
	require.NoError(t, WriteXLSX(out, items))
	require.NoError(t, out.Close())
	fromSheet, err := (&File{Path: xlsx}).Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, fromSheet)

	txt := filepath.Join(dir, "guides.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))
	_, err = (&File{Path: txt}).Items(context.Background())
	assert.ErrorContains(t, err, "unsupported")

	_, err = (&File{Path: filepath.Join(dir, "missing.yaml")}).Items(context.Background())
	assert.Error(t, err)
}

type countingProvider struct {
	calls int
	items []Item
	err   error
}

func (p *countingProvider) Items(context.Context) ([]Item, error) {
	p.calls++
	return p.items, p.err
}

func TestCache(t *testing.T) {
	src := &countingProvider{items: []Item{{Name: "A"}}}
	c := NewCache(src, time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		items, err := c.Items(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "A", items[0].Name)
	}
	assert.Equal(t, 1, src.calls)

	// callers get a copy
	items, _ := c.Items(context.Background())
	items[0].Name = "mutated"
	items, _ = c.Items(context.Background())
	assert.Equal(t, "A", items[0].Name)

	now = now.Add(2 * time.Minute)
	_, err := c.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)

	c.Invalidate()
	_, err = c.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, src.calls)
}

func TestCacheErrorsNotCached(t *testing.T) {
	src := &countingProvider{err: errors.New("down")}
	c := NewCache(src, time.Minute)

	_, err := c.Items(context.Background())
	assert.Error(t, err)
	src.err, src.items = nil, []Item{{Name: "A"}}

	items, err := c.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, src.calls)
}

func TestCacheDisabled(t *testing.T) {
	src := &countingProvider{}
	c := NewCache(src, 0)
	c.Items(context.Background())
	c.Items(context.Background())
	assert.Equal(t, 2, src.calls)
}

func TestStaticCopies(t *testing.T) {
	s := Static{{Name: "A"}}
	items, err := s.Items(context.Background())
	require.NoError(t, err)
	items[0].Name = "B"
	assert.Equal(t, "A", s[0].Name)
}
