package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"Railcalc/internal/calc/premium/importer"
	"Railcalc/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guides.xlsx")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, catalog.WriteXLSX(f, []catalog.Item{
		{Name: "A", Axial: catalog.Value(1000)},
		{Name: "B", Axial: catalog.Value(500)},
	}))
	require.NoError(t, f.Close())
	return path
}

func TestVariantsCommand(t *testing.T) {
	out, err := run(t, "variants")
	require.NoError(t, err)
	assert.Contains(t, out, "variant-axial-ecc-napr1")
	assert.Contains(t, out, "variant-vertical")
}

func TestCalcCommand(t *testing.T) {
	cat := writeCatalog(t)
	pdf := filepath.Join(t.TempDir(), "report.pdf")

	out, err := run(t, "calc", "--catalog", cat, "--mass", "100", "--guides", "2", "--carriages", "2",
		"--plane", "flat", "--pdf", pdf)
	require.NoError(t, err)
	assert.Contains(t, out, "variant-compact-flat")
	assert.Contains(t, out, "4,08")
	assert.Contains(t, out, "2,04")

	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestBatchCommand(t *testing.T) {
	cat := writeCatalog(t)
	tmpl := filepath.Join(t.TempDir(), "configurations.xlsx")

	_, err := run(t, "batch", "--template", tmpl)
	require.NoError(t, err)

	f, err := os.Open(tmpl)
	require.NoError(t, err)
	defer f.Close()
	_, _, err = importer.ReadConfigurations(f)
	assert.ErrorContains(t, err, "empty sheet")

	batchTemplate = ""
	_, err = run(t, "batch", "--catalog", cat)
	assert.ErrorContains(t, err, "--input")
}
