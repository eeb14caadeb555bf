package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// File loads the catalog from a .yaml/.yml or .xlsx file on every call.
// Wrap it in a Cache to avoid re-reading.
type File struct {
	Path string
}

func (f *File) Items(ctx context.Context) ([]Item, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		return ParseYAML(bytes.NewReader(data))
	case ".xlsx":
		return ParseXLSX(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("catalog: unsupported file type %q", filepath.Ext(f.Path))
	}
}

type yamlCatalog struct {
	Guides []Item `yaml:"guides"`
}

// ParseYAML reads a document of the form
//
//	guides:
//	  - name: V28-3
//	    radial: 1200
//	    axial: 800
func ParseYAML(r io.Reader) ([]Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if err := checkNames(doc.Guides); err != nil {
		return nil, err
	}
	SortByName(doc.Guides)
	return doc.Guides, nil
}

var xlsxColumns = []string{"name", "radial", "axial", "mx", "my", "mzs", "mzd"}

// ParseXLSX reads the first sheet. The header row names the columns
// (name, radial, axial, mx, my, mzs, mzd, in any order); empty cells are
// absent capacities.
func ParseXLSX(r io.Reader) ([]Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("catalog: empty sheet")
	}

	index := map[string]int{}
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["name"]; !ok {
		return nil, fmt.Errorf("catalog: header has no name column")
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var items []Item
	for n, row := range rows[1:] {
		name := cell(row, "name")
		if name == "" {
			continue
		}
		item := Item{Name: name}
		targets := []**float64{&item.Radial, &item.Axial, &item.Mx, &item.My, &item.Mzs, &item.Mzd}
		for i, col := range xlsxColumns[1:] {
			s := cell(row, col)
			if s == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
			if err != nil {
				return nil, fmt.Errorf("catalog: row %d column %s: %w", n+2, col, err)
			}
			*targets[i] = Value(v)
		}
		items = append(items, item)
	}
	if err := checkNames(items); err != nil {
		return nil, err
	}
	SortByName(items)
	return items, nil
}

// WriteXLSX writes items in the layout ParseXLSX reads.
func WriteXLSX(w io.Writer, items []Item) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(xlsxColumns))
	for i, c := range xlsxColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, it := range items {
		row := []interface{}{it.Name, cellValue(it.Radial), cellValue(it.Axial), cellValue(it.Mx),
			cellValue(it.My), cellValue(it.Mzs), cellValue(it.Mzd)}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func cellValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func checkNames(items []Item) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.Name == "" {
			return fmt.Errorf("catalog: item without name")
		}
		if seen[it.Name] {
			return fmt.Errorf("catalog: duplicate name %q", it.Name)
		}
		seen[it.Name] = true
	}
	return nil
}
