package importer

import (
	"fmt"
	"io"
	"strings"

	"Railcalc/internal/calc/guide"

	"github.com/xuri/excelize/v2"
)

// Columns is the expected sheet layout after the header row. Columns from
// maxTemperature on are optional.
var Columns = []string{"plane", "mass", "guideCount", "carriageCount", "l1", "l2", "l3", "l4", "l5",
	"maxTemperature", "aggressiveEnv", "isCompact"}

const requiredColumns = 9

type Skipped struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ReadConfigurations parses the first sheet. Rows that cannot be parsed are
// reported in Skipped instead of failing the whole file.
func ReadConfigurations(r io.Reader) ([]guide.Input, []Skipped, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("empty sheet")
	}

	var inputs []guide.Input
	var skipped []Skipped
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		input, err := parseRow(row)
		if err != nil {
			skipped = append(skipped, Skipped{Row: i + 1, Reason: err.Error()})
			continue
		}
		inputs = append(inputs, input)
	}
	return inputs, skipped, nil
}

func parseRow(row []string) (guide.Input, error) {
	if len(row) < requiredColumns {
		return guide.Input{}, fmt.Errorf("bad row: %d of %d required columns", len(row), requiredColumns)
	}
	nums := make([]float64, requiredColumns)
	for i := 1; i < requiredColumns; i++ {
		v, err := toFloat(row[i])
		if err != nil {
			return guide.Input{}, fmt.Errorf("column %s: %w", Columns[i], err)
		}
		nums[i] = v
	}
	guides, carriages := int(nums[2]), int(nums[3])
	if float64(guides) != nums[2] || float64(carriages) != nums[3] {
		return guide.Input{}, fmt.Errorf("guideCount and carriageCount must be integers")
	}

	in := guide.Input{
		Plane:         guide.Plane(strings.TrimSpace(row[0])),
		Mass:          nums[1],
		GuideCount:    guides,
		CarriageCount: carriages,
		L1:            nums[4],
		L2:            nums[5],
		L3:            nums[6],
		L4:            nums[7],
		L5:            nums[8],
	}
	if len(row) > 9 && strings.TrimSpace(row[9]) != "" {
		t, err := toFloat(row[9])
		if err != nil {
			return guide.Input{}, fmt.Errorf("column maxTemperature: %w", err)
		}
		in.MaxTemperature = t
	}
	if len(row) > 10 {
		in.AggressiveEnv = toBool(row[10])
	}
	if len(row) > 11 {
		in.IsCompact = toBool(row[11])
	}
	return in, nil
}

// WriteTemplate writes an empty sheet with the header row.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(f.GetSheetName(0), "A1", &header); err != nil {
		return err
	}
	return f.Write(w)
}

func toFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return guide.ParseDecimal(s)
}

func toBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "да":
		return true
	}
	return false
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
