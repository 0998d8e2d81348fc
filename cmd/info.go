/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ndvi-tools/raster"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Inspect a raster: size, bands, georeferencing and nodata",
	Long: `Print the structure of a GeoTIFF without reading pixel data:
	dimensions, geotransform, spatial reference, and per-band data type,
	block size and nodata marker.

	./ndvi-tools info [tif_file]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevels()
		if err := setUpRemote(); err != nil {
			return err
		}

		info, err := raster.ReadInfo(args[0])
		if err != nil {
			return err
		}
		printInfo(info)
		return nil
	},
}

func printInfo(info raster.Info) {
	fmt.Printf("%s\n", info.Path)
	fmt.Printf("  size:         %d x %d\n", info.Width, info.Height)
	fmt.Printf("  origin:       (%v, %v)\n", info.GeoTransform[0], info.GeoTransform[3])
	fmt.Printf("  pixel size:   (%v, %v)\n", info.GeoTransform[1], info.GeoTransform[5])
	if info.Projection != "" {
		fmt.Printf("  projection:   %s\n", info.Projection)
	}
	for _, band := range info.Bands {
		fmt.Printf("  band %d: %s, block %dx%d", band.Index, band.DataType, band.BlockW, band.BlockH)
		if band.HasNoData {
			fmt.Printf(", nodata %v", band.NoData)
		}
		fmt.Println()
	}
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
