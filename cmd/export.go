package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"

	"github.com/mycoleb/WashingtonMinimumWages/internal/county"
	"github.com/mycoleb/WashingtonMinimumWages/internal/wage"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the county wage table to XLSX or CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := exportOut
		if out == "" {
			out = "washington_minimum_wages." + exportFormat
		}

		var err error
		switch exportFormat {
		case "xlsx":
			err = exportXLSX(out)
		case "csv":
			err = exportCSV(out)
		default:
			return eris.Errorf("export: unknown format %q (want xlsx or csv)", exportFormat)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Wage table has been saved as '%s'\n", out)
		return nil
	},
}

func wageRows() [][]string {
	table := wage.DefaultTable()
	rows := [][]string{{"fips", "county", "rate", "display"}}
	for _, code := range county.Codes() {
		a := table.Resolve(county.Name(code))
		rows = append(rows, []string{
			code,
			county.LongName(code),
			strconv.FormatFloat(a.Rate, 'f', 2, 64),
			a.Display,
		})
	}
	return rows
}

func exportXLSX(path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Wages")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	for _, row := range wageRows() {
		r := sheet.AddRow()
		for _, val := range row {
			r.AddCell().Value = val
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

func exportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.WriteAll(wageRows()); err != nil {
		return eris.Wrap(err, "export: write csv")
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "output format: xlsx or csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default derived from format)")
	rootCmd.AddCommand(exportCmd)
}
