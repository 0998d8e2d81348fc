package raster

import (
	"fmt"
	"math"
)

// Grid is an in-memory raster band: row-major float64 samples plus the
// georeferencing needed to put each cell back on the map. All transforms in
// this package take and return Grids.
type Grid struct {
	Data         []float64
	Width        int
	Height       int
	GeoTransform [6]float64
	Projection   string
	NoData       float64
	HasNoData    bool
}

// Row is the tabular projection of a single valid cell: georeferenced
// cell-center coordinates and the sample value.
type Row struct {
	X     float64
	Y     float64
	Value float64
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Data:         make([]float64, width*height),
		Width:        width,
		Height:       height,
		GeoTransform: [6]float64{0, 1, 0, 0, 0, -1},
	}
}

func (g *Grid) Value(row, col int) float64 {
	return g.Data[row*g.Width+col]
}

func (g *Grid) SetValue(row, col int, v float64) {
	g.Data[row*g.Width+col] = v
}

// IsNoData reports whether v should be treated as a missing sample. NaN is
// always missing, regardless of the declared nodata marker.
func (g *Grid) IsNoData(v float64) bool {
	if math.IsNaN(v) {
		return true
	}
	return g.HasNoData && v == g.NoData
}

// CellCenter returns the georeferenced coordinates of the center of the cell
// at (row, col), following the GDAL geotransform convention.
func (g *Grid) CellCenter(row, col int) (x, y float64) {
	gt := g.GeoTransform
	x = gt[0] + (float64(col)+0.5)*gt[1] + (float64(row)+0.5)*gt[2]
	y = gt[3] + (float64(col)+0.5)*gt[4] + (float64(row)+0.5)*gt[5]
	return x, y
}

// SameGeometry reports whether two grids are co-registered: same dimensions
// and same geotransform. Algebra between grids requires this.
func (g *Grid) SameGeometry(other *Grid) bool {
	return g.Width == other.Width &&
		g.Height == other.Height &&
		g.GeoTransform == other.GeoTransform
}

// emptyLike returns a grid with the same geometry and nodata marker as g,
// with all cells zeroed.
func emptyLike(g *Grid) *Grid {
	return &Grid{
		Data:         make([]float64, g.Width*g.Height),
		Width:        g.Width,
		Height:       g.Height,
		GeoTransform: g.GeoTransform,
		Projection:   g.Projection,
		NoData:       g.NoData,
		HasNoData:    g.HasNoData,
	}
}

// Rows converts the grid to its tabular projection, one Row per valid cell.
// Nodata cells are omitted.
func (g *Grid) Rows() []Row {
	var rows []Row
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			v := g.Value(row, col)
			if g.IsNoData(v) {
				continue
			}
			x, y := g.CellCenter(row, col)
			rows = append(rows, Row{X: x, Y: y, Value: v})
		}
	}
	return rows
}

func geometryMismatch(a, b *Grid) error {
	return fmt.Errorf("grids do not share geometry: %dx%d gt=%v vs %dx%d gt=%v",
		a.Width, a.Height, a.GeoTransform, b.Width, b.Height, b.GeoTransform)
}

// Dims, X, Y and Z implement gonum/plot's GridXYZ so a Grid can be handed to
// a heatmap plotter directly. Z maps nodata to NaN, which plotters skip.
func (g *Grid) Dims() (c, r int) { return g.Width, g.Height }

func (g *Grid) X(c int) float64 {
	x, _ := g.CellCenter(0, c)
	return x
}

func (g *Grid) Y(r int) float64 {
	// plot draws row 0 at the bottom, rasters store it at the top
	_, y := g.CellCenter(g.Height-1-r, 0)
	return y
}

func (g *Grid) Z(c, r int) float64 {
	v := g.Value(g.Height-1-r, c)
	if g.IsNoData(v) {
		return math.NaN()
	}
	return v
}
