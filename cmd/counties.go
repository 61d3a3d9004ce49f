package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mycoleb/WashingtonMinimumWages/internal/county"
	"github.com/mycoleb/WashingtonMinimumWages/internal/wage"
)

var countiesCmd = &cobra.Command{
	Use:   "counties",
	Short: "List Washington counties with their resolved minimum wage",
	RunE: func(cmd *cobra.Command, _ []string) error {
		table := wage.DefaultTable()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FIPS\tCOUNTY\tRATE\tDISPLAY")
		for _, code := range county.Codes() {
			a := table.Resolve(county.Name(code))
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", code, county.LongName(code), a.Rate, a.Display)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(countiesCmd)
}
