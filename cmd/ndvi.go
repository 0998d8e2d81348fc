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

var redBand int
var nirBand int
var aggFactor int
var maskPath string
var numWorkers int

// ndviCmd represents the ndvi command
var ndviCmd = &cobra.Command{
	Use:   "ndvi",
	Short: "Compute the NDVI from a multi-band raster",
	Long: `Read the red and near-infrared bands of a multi-band GeoTIFF,
	optionally downsample them by block aggregation and mask them by a
	secondary raster, then compute the NDVI

		(NIR - Red) / (NIR + Red)

	elementwise and write the result as a single-band GeoTIFF. Cells that
	are nodata in either band, dropped by the mask, or sitting on a zero
	denominator come out as nodata.

	Options:
		--redBand:    1-based index of the red band. Default 1.
		--nirBand:    1-based index of the near-infrared band. Default 2.
		--aggFactor:  Block-mean downsampling factor applied before the
									algebra. 1 disables aggregation.
		--mask:       Raster whose nodata cells are dropped from the input
									bands before the algebra. Must be co-registered with
									the (aggregated) bands.
		--numWorkers: Number of workers for block reads.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevels()
		if err := setUpRemote(); err != nil {
			return err
		}

		grids, err := raster.ReadBands(args[0], []int{redBand, nirBand}, numWorkers)
		if err != nil {
			return err
		}
		red, nir := grids[0], grids[1]

		if aggFactor > 1 {
			logrus.Infof("Aggregating by factor %d", aggFactor)
			if red, err = raster.BlockAggregate(red, aggFactor, raster.Mean); err != nil {
				return err
			}
			if nir, err = raster.BlockAggregate(nir, aggFactor, raster.Mean); err != nil {
				return err
			}
		}

		if maskPath != "" {
			mask, err := raster.ReadBand(maskPath, 1, numWorkers)
			if err != nil {
				return err
			}
			if red, err = raster.ApplyMask(red, mask); err != nil {
				return err
			}
			if nir, err = raster.ApplyMask(nir, mask); err != nil {
				return err
			}
		}

		ndvi, err := raster.NormalizedDifference(nir, red)
		if err != nil {
			return err
		}

		stats := raster.Summarize(ndvi)
		logrus.Infof("NDVI over %d cells: min %.3f max %.3f mean %.3f", stats.Count, stats.Min, stats.Max, stats.Mean)

		return raster.WriteGTiff(ndvi, args[1])
	},
}

func init() {
	rootCmd.AddCommand(ndviCmd)

	ndviCmd.Flags().IntVar(&redBand, "redBand", 1, "1-based index of the red band")
	err := viper.BindPFlag("redBand", ndviCmd.Flags().Lookup("redBand"))
	if err != nil {
		logrus.Exit(1)
	}

	ndviCmd.Flags().IntVar(&nirBand, "nirBand", 2, "1-based index of the near-infrared band")
	err = viper.BindPFlag("nirBand", ndviCmd.Flags().Lookup("nirBand"))
	if err != nil {
		logrus.Exit(1)
	}

	ndviCmd.Flags().IntVarP(&aggFactor, "aggFactor", "f", 1, "Block-mean downsampling factor, 1 to disable")
	err = viper.BindPFlag("aggFactor", ndviCmd.Flags().Lookup("aggFactor"))
	if err != nil {
		logrus.Exit(1)
	}

	ndviCmd.Flags().StringVarP(&maskPath, "mask", "m", "", "Mask raster; its nodata cells are dropped from the input")
	err = viper.BindPFlag("mask", ndviCmd.Flags().Lookup("mask"))
	if err != nil {
		logrus.Exit(1)
	}

	ndviCmd.Flags().IntVarP(&numWorkers, "numWorkers", "n", 8, "Number of workers to spawn for parallel processing")
	err = viper.BindPFlag("numWorkers", ndviCmd.Flags().Lookup("numWorkers"))
	if err != nil {
		logrus.Exit(1)
	}
}
