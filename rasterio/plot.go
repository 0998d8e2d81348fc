package rasterio

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"ndvi-tools/raster"
)

// SaveHeatmap renders a grid as a heatmap PNG. Nodata cells come through as
// NaN from the grid's GridXYZ adapter and are left unpainted.
func SaveHeatmap(g *raster.Grid, title, path string) error {
	pal := moreland.Kindlmann().Palette(255)
	hm := plotter.NewHeatMap(g, pal)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(hm)

	logrus.Infof("Rendering heatmap to %s", path)
	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}

// SaveHistogram renders the distribution of a grid's valid samples as a
// histogram PNG.
func SaveHistogram(g *raster.Grid, bins int, title, path string) error {
	vals := g.Valid()
	if len(vals) == 0 {
		return fmt.Errorf("no valid samples to plot")
	}

	hist, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "value"
	p.Y.Label.Text = "count"
	p.Add(hist)

	logrus.Infof("Rendering histogram to %s", path)
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
