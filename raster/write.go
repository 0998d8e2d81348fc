package raster

import (
	"errors"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"
)

// WriteGTiff writes a grid to a single-band Float64 GeoTIFF, carrying over
// its geotransform, projection and nodata marker.
func WriteGTiff(g *Grid, path string) (err error) {
	RegisterDrivers()

	ds, err := godal.Create(
		godal.GTiff,
		path,
		1,
		godal.Float64,
		g.Width,
		g.Height,
		godal.CreationOption("TILED=YES", "COMPRESS=DEFLATE"),
	)
	if err != nil {
		logrus.Error(err)
		return err
	}
	defer func() {
		err = errors.Join(err, ds.Close())
	}()

	if err := ds.SetGeoTransform(g.GeoTransform); err != nil {
		return err
	}
	if g.Projection != "" {
		if err := ds.SetProjection(g.Projection); err != nil {
			return err
		}
	}

	band := &ds.Bands()[0]
	if g.HasNoData {
		if err := band.SetNoData(g.NoData); err != nil {
			return err
		}
	}
	if err := band.Write(0, 0, g.Data, g.Width, g.Height); err != nil {
		return err
	}
	return nil
}
