package raster

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the valid samples of a grid.
type Stats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Valid returns the grid's valid samples as a flat slice.
func (g *Grid) Valid() []float64 {
	var vals []float64
	for _, v := range g.Data {
		if g.IsNoData(v) {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}

// Summarize computes Stats over the grid's valid samples. A grid with no
// valid samples yields the zero Stats.
func Summarize(g *Grid) Stats {
	vals := g.Valid()
	if len(vals) == 0 {
		return Stats{}
	}
	return Stats{
		Count:  len(vals),
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Mean:   stat.Mean(vals, nil),
		StdDev: stat.StdDev(vals, nil),
	}
}
