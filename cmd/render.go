/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ndvi-tools/raster"
	"ndvi-tools/rasterio"
)

var renderBand int
var histBins int
var asHistogram bool
var plotTitle string

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a raster as a heatmap or histogram PNG",
	Long: `Render a raster band to a PNG file, either as a heatmap of the
	grid (the default) or, with --hist, as a histogram of its valid
	values. Nodata cells are left unpainted.

	Options:
		--band:  1-based band to render. Default 1.
		--hist:  Render a value histogram instead of a heatmap.
		--bins:  Number of histogram bins. Default 50.
		--title: Plot title.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevels()
		if err := setUpRemote(); err != nil {
			return err
		}

		grid, err := raster.ReadBand(args[0], renderBand, numWorkers)
		if err != nil {
			return err
		}

		if viper.GetBool("hist") {
			return rasterio.SaveHistogram(grid, histBins, plotTitle, args[1])
		}
		return rasterio.SaveHeatmap(grid, plotTitle, args[1])
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().IntVarP(&renderBand, "band", "b", 1, "1-based band to render")
	err := viper.BindPFlag("renderBand", renderCmd.Flags().Lookup("band"))
	if err != nil {
		logrus.Exit(1)
	}

	renderCmd.Flags().BoolVar(&asHistogram, "hist", false, "Render a value histogram instead of a heatmap")
	err = viper.BindPFlag("hist", renderCmd.Flags().Lookup("hist"))
	if err != nil {
		logrus.Exit(1)
	}

	renderCmd.Flags().IntVar(&histBins, "bins", 50, "Number of histogram bins")
	err = viper.BindPFlag("bins", renderCmd.Flags().Lookup("bins"))
	if err != nil {
		logrus.Exit(1)
	}

	renderCmd.Flags().StringVar(&plotTitle, "title", "", "Plot title")
	err = viper.BindPFlag("title", renderCmd.Flags().Lookup("title"))
	if err != nil {
		logrus.Exit(1)
	}

	renderCmd.Flags().IntVarP(&numWorkers, "numWorkers", "n", 8, "Number of workers to spawn for parallel processing")
	err = viper.BindPFlag("numWorkers", renderCmd.Flags().Lookup("numWorkers"))
	if err != nil {
		logrus.Exit(1)
	}
}
