/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"

	"github.com/airbusgeo/godal"
	"github.com/airbusgeo/osio"
	"github.com/airbusgeo/osio/gcs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ndvi-tools/raster"
)

var Verbose bool
var Debug bool
var UseGCS bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ndvi-tools",
	Short: "Tools for vegetation-index workflows over GeoTIFF rasters",
	Long: `Load, inspect, downsample, mask and algebraically combine
	multi-band satellite rasters, compute the NDVI, classify forest
	cover and export or render the results:
	./ndvi-tools info [tif_file]
	./ndvi-tools ndvi [opts] [tif_file] [output_tif]
	./ndvi-tools classify [opts] [ndvi_tif] [output_tif]
	./ndvi-tools export [opts] [tif_file] [output_path]
	./ndvi-tools render [opts] [tif_file] [output_png]
	./ndvi-tools cells [opts] [tif_file] [output_path]`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Verbose output")
	err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	if err != nil {
		logrus.Exit(1)
	}
	rootCmd.PersistentFlags().BoolVarP(&Debug, "debug", "d", false, "Debug output")
	err = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	if err != nil {
		logrus.Exit(1)
	}
	rootCmd.PersistentFlags().BoolVar(&UseGCS, "gcs", false, "Register a gs:// handler so rasters can be read from Google Cloud Storage")
	err = viper.BindPFlag("gcs", rootCmd.PersistentFlags().Lookup("gcs"))
	if err != nil {
		logrus.Exit(1)
	}
}

func setLogLevels() {
	if viper.GetBool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	} else if viper.GetBool("verbose") {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// setUpRemote registers the osio GCS adapter with GDAL's VSI layer when
// --gcs is set, letting any subcommand open gs:// paths directly.
func setUpRemote() error {
	if !viper.GetBool("gcs") {
		return nil
	}
	raster.RegisterDrivers()
	gcsh, err := gcs.Handle(context.Background())
	if err != nil {
		return err
	}
	gcsa, err := osio.NewAdapter(gcsh)
	if err != nil {
		return err
	}
	return godal.RegisterVSIHandler("gs://", gcsa, godal.VSIHandlerStripPrefix(true))
}
