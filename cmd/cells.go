// Package cmd /*
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ndvi-tools/cellindex"
	"ndvi-tools/raster"
	"ndvi-tools/rasterio"
)

var s2Lvl int
var cellsBand int

// cellsCmd represents the cells command
var cellsCmd = &cobra.Command{
	Use:   "cells",
	Short: "Aggregate a raster to S2 cells",
	Long: `Map every valid cell of a geographic raster (typically a
	classified forest map) to its containing S2 cell and aggregate the
	values per cell. Output holds the cell ID, the aggregate value and
	the cell polygon as WKT.

	Options:
		--s2Lvl:      S2 cell level to generate results for. Essentially output resolution.
		--aggFunc:    Function to use when aggregating to S2 cell. Default is the mean,
									choose from: mean, sum, max, min.
		--band:       1-based band to aggregate. Default 1.
		--format:     Output format, csv or parquet. Default csv.
		--numWorkers: Number of workers to spawn for parallel processing.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevels()
		if err := setUpRemote(); err != nil {
			return err
		}

		grid, err := raster.ReadBand(args[0], cellsBand, numWorkers)
		if err != nil {
			return err
		}

		opts := cellindex.Options{
			NumWorkers: numWorkers,
			Level:      s2Lvl,
			AggFunc:    raster.ChooseAggFunc(viper.GetString("aggFunc")),
		}
		cellData, err := cellindex.IndexGrid(grid, opts)
		if err != nil {
			return err
		}
		logrus.Infof("Aggregated %d cells at level %d", len(cellData), s2Lvl)

		switch viper.GetString("cellsFormat") {
		case "csv":
			return rasterio.WriteCellsCSV(cellData, args[1])
		case "parquet":
			return rasterio.WriteCellsParquet(cellData, args[1])
		default:
			return fmt.Errorf("unknown format %q, choose from: csv, parquet", viper.GetString("cellsFormat"))
		}
	},
}

func init() {
	rootCmd.AddCommand(cellsCmd)

	cellsCmd.Flags().IntVarP(&s2Lvl, "s2Lvl", "l", 11, "S2 cell level to generate results for. Essentially output resolution")
	err := viper.BindPFlag("s2Lvl", cellsCmd.Flags().Lookup("s2Lvl"))
	if err != nil {
		logrus.Exit(1)
	}

	cellsCmd.Flags().StringP("aggFunc", "a", "mean", "Function to use when aggregating to S2 cell. Default is the mean, choose from: mean, sum, max, min")
	err = viper.BindPFlag("aggFunc", cellsCmd.Flags().Lookup("aggFunc"))
	if err != nil {
		logrus.Exit(1)
	}

	cellsCmd.Flags().IntVarP(&cellsBand, "band", "b", 1, "1-based band to aggregate")
	err = viper.BindPFlag("cellsBand", cellsCmd.Flags().Lookup("band"))
	if err != nil {
		logrus.Exit(1)
	}

	cellsCmd.Flags().StringP("format", "o", "csv", "Output format, csv or parquet")
	err = viper.BindPFlag("cellsFormat", cellsCmd.Flags().Lookup("format"))
	if err != nil {
		logrus.Exit(1)
	}

	cellsCmd.Flags().IntVarP(&numWorkers, "numWorkers", "n", 8, "Number of workers to spawn for parallel processing")
	err = viper.BindPFlag("numWorkers", cellsCmd.Flags().Lookup("numWorkers"))
	if err != nil {
		logrus.Exit(1)
	}
}
