package main

import (
	"fmt"
	"os"

	"Railcalc/internal/calc/premium/batch"
	"Railcalc/internal/calc/premium/importer"

	"github.com/spf13/cobra"
)

var batchInput string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rank the catalog for every configuration in an XLSX sheet",
	Long: `Read configurations from the first sheet of an XLSX file (header row,
then plane, mass, guideCount, carriageCount, l1..l5, and optionally
maxTemperature, aggressiveEnv, isCompact) and print a ranking per row.

Use "railcalc batch --template out.xlsx" to get an empty sheet.`,
	RunE: runBatch,
}

var batchTemplate string

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "XLSX file with configurations")
	batchCmd.Flags().StringVar(&batchTemplate, "template", "", "Write an empty configuration sheet and exit")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchTemplate != "" {
		return writeFile(batchTemplate, importer.WriteTemplate)
	}
	if batchInput == "" {
		return fmt.Errorf("--input is required")
	}

	f, err := os.Open(batchInput)
	if err != nil {
		return err
	}
	defer f.Close()

	inputs, skipped, err := importer.ReadConfigurations(f)
	if err != nil {
		return err
	}
	items, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	res, err := batch.Calculate(newEngine(cmd), inputs, items)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range skipped {
		fmt.Fprintf(out, "row %d skipped: %s\n", s.Row, s.Reason)
	}
	for _, e := range res.Entries {
		fmt.Fprintf(out, "── configuration %d: plane=%s mass=%g guides=%d carriages=%d\n",
			e.Row, e.Input.Plane, e.Input.Mass, e.Input.GuideCount, e.Input.CarriageCount)
		if e.Error != "" {
			fmt.Fprintf(out, "  error: %s\n\n", e.Error)
			continue
		}
		printResult(out, *e.Result)
	}
	fmt.Fprintf(out, "%d configurations, %d failed\n", res.Count, res.Failed)
	return nil
}
