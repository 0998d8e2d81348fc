/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ndvi-tools/raster"
	"ndvi-tools/rasterio"
)

var memLimit int
var exportBand int

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Tabulate a raster as one (x, y, value) row per valid cell",
	Long: `Convert a raster band to its tabular projection: one row per
	valid cell holding the cell-center coordinates and the sample value.
	Nodata cells are omitted.

	Options:
		--format:     Output format, csv or parquet. Default csv.
		--band:       1-based band to export. Default 1.
		--numWorkers: Number of workers for block reads and parquet writes.
		--memLimitGB: Memory limit in GB for the parquet writer.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevels()
		if err := setUpRemote(); err != nil {
			return err
		}

		grid, err := raster.ReadBand(args[0], exportBand, numWorkers)
		if err != nil {
			return err
		}
		rows := grid.Rows()
		logrus.Infof("Exporting %d rows", len(rows))

		switch viper.GetString("format") {
		case "csv":
			return rasterio.WriteRowsCSV(rows, args[1])
		case "parquet":
			rowCh := make(chan raster.Row)
			go func() {
				defer close(rowCh)
				for _, row := range rows {
					rowCh <- row
				}
			}()
			return rasterio.StreamRowsToParquet(rowCh, args[1], numWorkers, memLimit)
		default:
			return fmt.Errorf("unknown format %q, choose from: csv, parquet", viper.GetString("format"))
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "o", "csv", "Output format, csv or parquet")
	err := viper.BindPFlag("format", exportCmd.Flags().Lookup("format"))
	if err != nil {
		logrus.Exit(1)
	}

	exportCmd.Flags().IntVarP(&exportBand, "band", "b", 1, "1-based band to export")
	err = viper.BindPFlag("band", exportCmd.Flags().Lookup("band"))
	if err != nil {
		logrus.Exit(1)
	}

	exportCmd.Flags().IntVarP(&numWorkers, "numWorkers", "n", 8, "Number of workers to spawn for parallel processing")
	err = viper.BindPFlag("numWorkers", exportCmd.Flags().Lookup("numWorkers"))
	if err != nil {
		logrus.Exit(1)
	}

	exportCmd.Flags().IntVarP(&memLimit, "memLimitGB", "m", 8, "Memory limit in GB for the parquet writer")
	err = viper.BindPFlag("memLimitGB", exportCmd.Flags().Lookup("memLimitGB"))
	if err != nil {
		logrus.Exit(1)
	}
}
