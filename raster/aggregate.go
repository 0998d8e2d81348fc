package raster

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// AggFunc reduces the valid samples of an aggregation window to one value.
type AggFunc func(...float64) float64

func Mean(inData ...float64) float64 {
	sum := Sum(inData...)
	return sum / float64(len(inData))
}

func Sum(inData ...float64) float64 {
	var sum float64
	for _, val := range inData {
		sum += val
	}
	return sum
}

func Max(inData ...float64) float64 {
	max := inData[0]
	for _, val := range inData[1:] {
		if val > max {
			max = val
		}
	}
	return max
}

func Min(inData ...float64) float64 {
	min := inData[0]
	for _, val := range inData[1:] {
		if val < min {
			min = val
		}
	}
	return min
}

// ChooseAggFunc maps a flag value to its AggFunc, falling back to the mean
// for anything unrecognized.
func ChooseAggFunc(funcFlag string) AggFunc {
	switch funcFlag {
	case "mean":
		return Mean
	case "sum":
		return Sum
	case "max":
		return Max
	case "min":
		return Min
	default:
		logrus.Warnf("Aggregation function %s not recognized, using mean", funcFlag)
		return Mean
	}
}

// BlockAggregate downsamples a grid by an integer factor, reducing each
// factor x factor window with aggFunc over its valid samples. The output has
// ceil(dim/factor) cells per axis; its geotransform scales the pixel size by
// the factor. A window with no valid samples becomes nodata.
func BlockAggregate(g *Grid, factor int, aggFunc AggFunc) (*Grid, error) {
	if factor < 1 {
		return nil, fmt.Errorf("aggregation factor must be >= 1, got %d", factor)
	}
	if factor == 1 {
		out := emptyLike(g)
		copy(out.Data, g.Data)
		return out, nil
	}

	outW := (g.Width + factor - 1) / factor
	outH := (g.Height + factor - 1) / factor
	out := &Grid{
		Data:         make([]float64, outW*outH),
		Width:        outW,
		Height:       outH,
		GeoTransform: g.GeoTransform,
		Projection:   g.Projection,
		NoData:       g.NoData,
		HasNoData:    g.HasNoData,
	}
	out.GeoTransform[1] *= float64(factor)
	out.GeoTransform[2] *= float64(factor)
	out.GeoTransform[4] *= float64(factor)
	out.GeoTransform[5] *= float64(factor)

	// Aggregating can only lose samples, so the output needs a nodata
	// marker even when the input had none.
	if !out.HasNoData {
		out.NoData = DefaultNoData
		out.HasNoData = true
	}

	window := make([]float64, 0, factor*factor)
	for outRow := 0; outRow < outH; outRow++ {
		for outCol := 0; outCol < outW; outCol++ {
			window = window[:0]
			for row := outRow * factor; row < (outRow+1)*factor && row < g.Height; row++ {
				for col := outCol * factor; col < (outCol+1)*factor && col < g.Width; col++ {
					v := g.Value(row, col)
					if g.IsNoData(v) {
						continue
					}
					window = append(window, v)
				}
			}
			if len(window) == 0 {
				out.SetValue(outRow, outCol, out.NoData)
				continue
			}
			out.SetValue(outRow, outCol, aggFunc(window...))
		}
	}
	return out, nil
}
