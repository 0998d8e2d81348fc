/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ndvi-tools/raster"
)

var threshold float64
var marker float64

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Threshold an NDVI raster into a forest map",
	Long: `Classify an NDVI raster against a scalar threshold: cells with
	NDVI >= t become the forest marker value, every other cell becomes
	nodata. The result is written as a single-band GeoTIFF.

	Options:
		--threshold: Classification threshold. Default 0.3.
		--marker:    Value written for cells at or above the threshold.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevels()
		if err := setUpRemote(); err != nil {
			return err
		}

		grid, err := raster.ReadBand(args[0], 1, numWorkers)
		if err != nil {
			return err
		}

		forest := raster.Threshold(grid, threshold, marker)
		stats := raster.Summarize(forest)
		logrus.Infof("%d of %d cells at or above %v", stats.Count, len(grid.Data), threshold)

		return raster.WriteGTiff(forest, args[1])
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().Float64VarP(&threshold, "threshold", "t", 0.3, "Classification threshold")
	err := viper.BindPFlag("threshold", classifyCmd.Flags().Lookup("threshold"))
	if err != nil {
		logrus.Exit(1)
	}

	classifyCmd.Flags().Float64Var(&marker, "marker", 1, "Value written for cells at or above the threshold")
	err = viper.BindPFlag("marker", classifyCmd.Flags().Lookup("marker"))
	if err != nil {
		logrus.Exit(1)
	}

	classifyCmd.Flags().IntVarP(&numWorkers, "numWorkers", "n", 8, "Number of workers to spawn for parallel processing")
	err = viper.BindPFlag("numWorkers", classifyCmd.Flags().Lookup("numWorkers"))
	if err != nil {
		logrus.Exit(1)
	}
}
