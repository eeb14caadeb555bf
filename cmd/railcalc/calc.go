package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"Railcalc/internal/calc/guide"
	"Railcalc/internal/calc/report"

	"github.com/spf13/cobra"
)

var (
	calcInput  guide.Input
	calcPlane  string
	calcPDF    string
	calcXLSX   string
	calcTitle  string
	calcAuthor string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Rank catalog carriages for one configuration",
	Long: `Select the calculation rule for a mounting configuration and print
the catalog ranked by safety factor.

Lengths are in meters, mass in kilograms.

Examples:
  # Two guides, two carriages, flat, centred load
  railcalc calc --catalog guides.yaml --mass 100 --guides 2 --carriages 2 --plane flat

  # One guide with an offset load, PDF report
  railcalc calc --catalog guides.xlsx -m 50 -g 1 -k 1 -p flat --l1 0.1 --l2 0.05 --pdf out.pdf`,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	f := calcCmd.Flags()
	f.Float64VarP(&calcInput.Mass, "mass", "m", 0, "Carried mass (kg) [required]")
	f.IntVarP(&calcInput.GuideCount, "guides", "g", 1, "Number of guides (1 or 2)")
	f.IntVarP(&calcInput.CarriageCount, "carriages", "k", 1, "Carriages per guide (1 or 2)")
	f.StringVarP(&calcPlane, "plane", "p", "", "Mounting plane: flat, vertical1, horizontal, wall, vertical2, wall2 [required]")
	f.Float64Var(&calcInput.L1, "l1", 0, "Offset L1 (m)")
	f.Float64Var(&calcInput.L2, "l2", 0, "Offset L2 (m)")
	f.Float64Var(&calcInput.L3, "l3", 0, "Offset L3 (m)")
	f.Float64Var(&calcInput.L4, "l4", 0, "Carriage spacing L4 (m)")
	f.Float64Var(&calcInput.L5, "l5", 0, "Guide spacing L5 (m)")
	f.Float64Var(&calcInput.MaxTemperature, "max-temp", 20, "Maximum operating temperature (C)")
	f.BoolVar(&calcInput.AggressiveEnv, "aggressive", false, "Aggressive environment")
	f.BoolVar(&calcInput.IsCompact, "compact", true, "Compact carriage family")

	f.StringVar(&calcPDF, "pdf", "", "Write a PDF report to this path")
	f.StringVar(&calcXLSX, "xlsx", "", "Write an XLSX report to this path")
	f.StringVar(&calcTitle, "title", "", "Report title")
	f.StringVar(&calcAuthor, "author", "", "Report author")

	calcCmd.MarkFlagRequired("mass")
	calcCmd.MarkFlagRequired("plane")
}

func runCalc(cmd *cobra.Command, args []string) error {
	in := calcInput
	in.Plane = guide.Plane(calcPlane)
	if err := in.Validate(); err != nil {
		return err
	}

	items, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	res, err := newEngine(cmd).Calculate(in, items)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), res)

	meta := report.Meta{Title: calcTitle, Author: calcAuthor, Date: time.Now()}
	if calcPDF != "" {
		if err := writeFile(calcPDF, func(w io.Writer) error { return report.PDF(w, meta, in, res) }); err != nil {
			return err
		}
	}
	if calcXLSX != "" {
		if err := writeFile(calcXLSX, func(w io.Writer) error { return report.XLSX(w, meta, in, res) }); err != nil {
			return err
		}
	}
	return nil
}

func printResult(w io.Writer, res guide.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  Variant: %s\n", res.Variant)
	if res.OK {
		fmt.Fprintf(w, "  Base load: %.3f N\n", res.Load)
	}
	for _, n := range res.Notes {
		fmt.Fprintf(w, "  %s\n", n)
	}
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	if !res.OK {
		fmt.Fprintln(w)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  CODE\tK\t")
	for _, row := range res.Rows {
		fmt.Fprintf(tw, "  %s\t%s\t\n", row.Name, row.Factor)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
