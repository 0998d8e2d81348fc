package raster

// ApplyMask returns a copy of g with nodata everywhere the mask grid holds
// nodata. Every other cell is carried over unchanged. The grids must be
// co-registered.
func ApplyMask(g, mask *Grid) (*Grid, error) {
	if !g.SameGeometry(mask) {
		return nil, geometryMismatch(g, mask)
	}

	out := emptyLike(g)
	if !out.HasNoData {
		out.NoData = DefaultNoData
		out.HasNoData = true
	}
	for i, v := range g.Data {
		if mask.IsNoData(mask.Data[i]) {
			out.Data[i] = out.NoData
			continue
		}
		out.Data[i] = v
	}
	return out, nil
}
