package main

import (
	"fmt"
	"text/tabwriter"

	"Railcalc/internal/calc/guide"

	"github.com/spf13/cobra"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List calculation rules in dispatch order",
	Run: func(cmd *cobra.Command, args []string) {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tNAME\tRULE")
		for i, v := range guide.Variants() {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, v.Name, v.Summary)
		}
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}
