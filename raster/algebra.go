package raster

import "math"

// DefaultNoData marks missing cells in derived grids whose inputs carried no
// nodata value of their own.
const DefaultNoData = -9999

// NormalizedDifference computes (a - b) / (a + b) elementwise over two
// co-registered grids. With a = NIR and b = Red this is the NDVI; the result
// lies in [-1, 1] wherever both inputs are valid and non-negative. Cells
// where either input is nodata, or where the denominator is zero or
// non-finite, become nodata.
func NormalizedDifference(a, b *Grid) (*Grid, error) {
	if !a.SameGeometry(b) {
		return nil, geometryMismatch(a, b)
	}

	out := emptyLike(a)
	out.NoData = DefaultNoData
	out.HasNoData = true
	for i := range a.Data {
		av, bv := a.Data[i], b.Data[i]
		if a.IsNoData(av) || b.IsNoData(bv) {
			out.Data[i] = out.NoData
			continue
		}
		denom := av + bv
		if denom == 0 || math.IsInf(denom, 0) {
			out.Data[i] = out.NoData
			continue
		}
		out.Data[i] = (av - bv) / denom
	}
	return out, nil
}

// Threshold classifies a grid against a scalar threshold: cells with a valid
// value >= t become the marker, everything else becomes nodata.
func Threshold(g *Grid, t, marker float64) *Grid {
	out := emptyLike(g)
	out.NoData = DefaultNoData
	out.HasNoData = true
	for i, v := range g.Data {
		if g.IsNoData(v) || v < t {
			out.Data[i] = out.NoData
			continue
		}
		out.Data[i] = marker
	}
	return out
}
