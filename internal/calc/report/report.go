package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"Railcalc/internal/calc/guide"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

type Meta struct {
	Project string    `json:"project"`
	Author  string    `json:"author"`
	Title   string    `json:"title"`
	Date    time.Time `json:"-"`
}

func (m Meta) title() string {
	if m.Title == "" {
		return "Guide Carriage Selection"
	}
	return m.Title
}

func inputLines(in guide.Input) [][2]string {
	return [][2]string{
		{"Plane", string(in.Plane)},
		{"Mass, kg", fmt.Sprintf("%g", in.Mass)},
		{"Guides", fmt.Sprintf("%d", in.GuideCount)},
		{"Carriages", fmt.Sprintf("%d", in.CarriageCount)},
		{"L1..L5, m", fmt.Sprintf("%g / %g / %g / %g / %g", in.L1, in.L2, in.L3, in.L4, in.L5)},
		{"Max temperature, C", fmt.Sprintf("%g", in.MaxTemperature)},
		{"Aggressive environment", fmt.Sprintf("%t", in.AggressiveEnv)},
	}
}

// PDF renders the input, the chosen variant and the ranked table.
func PDF(w io.Writer, meta Meta, in guide.Input, res guide.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.title()))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", meta.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Configuration")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range inputLines(in) {
		pdf.CellFormat(60, 6, l[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, l[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Result")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(60, 6, "Variant", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, res.Variant, "", 1, "L", false, 0, "")
	if res.OK {
		pdf.CellFormat(60, 6, "Base load, N", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%.3f", res.Load), "", 1, "L", false, 0, "")
	}
	pdf.MultiCell(0, 5, tr(pdfText(strings.Join(res.Notes, "\n"))), "", "L", false)
	pdf.Ln(4)

	if len(res.Rows) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(255, 204, 153)
		pdf.CellFormat(90, 7, "Code", "1", 0, "C", true, 0, "")
		pdf.CellFormat(50, 7, "Safety factor", "1", 1, "C", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for i, row := range res.Rows {
			fill := i%2 == 1
			pdf.SetFillColor(255, 240, 225)
			pdf.CellFormat(90, 6, tr(row.Name), "1", 0, "L", fill, 0, "")
			pdf.CellFormat(50, 6, row.Factor, "1", 1, "R", fill, 0, "")
		}
	}
	return pdf.Output(w)
}

// The core fonts are cp1252; symbols outside it are spelled out.
func pdfText(s string) string {
	return strings.NewReplacer("·", "*", "≠", "!=").Replace(s)
}

// XLSX writes the same content as PDF into a single sheet.
func XLSX(w io.Writer, meta Meta, in guide.Input, res guide.Result) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	line := 1
	put := func(values ...interface{}) error {
		addr, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		line++
		return f.SetSheetRow(sheet, addr, &values)
	}

	if err := put(meta.title()); err != nil {
		return err
	}
	if err := put("Project", meta.Project); err != nil {
		return err
	}
	if err := put("Author", meta.Author); err != nil {
		return err
	}
	if err := put("Date", meta.Date.Format("2006-01-02")); err != nil {
		return err
	}
	line++
	for _, l := range inputLines(in) {
		if err := put(l[0], l[1]); err != nil {
			return err
		}
	}
	line++
	if err := put("Variant", res.Variant); err != nil {
		return err
	}
	if err := put("Base load, N", res.Load); err != nil {
		return err
	}
	for _, n := range res.Notes {
		if err := put("Note", n); err != nil {
			return err
		}
	}
	line++
	if err := put("Code", "Safety factor"); err != nil {
		return err
	}
	for _, row := range res.Rows {
		if err := put(row.Name, row.Factor); err != nil {
			return err
		}
	}
	return f.Write(w)
}
