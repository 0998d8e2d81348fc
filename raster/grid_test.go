package raster

import (
	"math"
	"reflect"
	"testing"
)

func TestCellCenter(t *testing.T) {
	g := NewGrid(4, 3)
	g.GeoTransform = [6]float64{100, 10, 0, 50, 0, -10}

	x, y := g.CellCenter(0, 0)
	if x != 105 || y != 45 {
		t.Errorf("got (%v, %v), want (105, 45)", x, y)
	}

	x, y = g.CellCenter(2, 3)
	if x != 135 || y != 25 {
		t.Errorf("got (%v, %v), want (135, 25)", x, y)
	}
}

func TestIsNoData(t *testing.T) {
	g := NewGrid(2, 2)
	g.NoData = -9999
	g.HasNoData = true

	if !g.IsNoData(-9999) {
		t.Error("nodata marker not recognized")
	}
	if !g.IsNoData(math.NaN()) {
		t.Error("NaN should always be nodata")
	}
	if g.IsNoData(0) {
		t.Error("0 wrongly treated as nodata")
	}

	bare := NewGrid(2, 2)
	if bare.IsNoData(-9999) {
		t.Error("marker applied without HasNoData")
	}
}

func TestRows(t *testing.T) {
	g := NewGrid(2, 2)
	g.GeoTransform = [6]float64{0, 1, 0, 0, 0, -1}
	g.NoData = -1
	g.HasNoData = true
	g.Data = []float64{1, -1, 3, 4}

	got := g.Rows()
	want := []Row{
		{X: 0.5, Y: -0.5, Value: 1},
		{X: 0.5, Y: -1.5, Value: 3},
		{X: 1.5, Y: -1.5, Value: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, \nwant %v", got, want)
	}
}

func TestSameGeometry(t *testing.T) {
	a := NewGrid(3, 3)
	b := NewGrid(3, 3)
	if !a.SameGeometry(b) {
		t.Error("identical grids reported as mismatched")
	}

	b.GeoTransform[0] = 10
	if a.SameGeometry(b) {
		t.Error("shifted origin reported as co-registered")
	}

	c := NewGrid(3, 4)
	if a.SameGeometry(c) {
		t.Error("different heights reported as co-registered")
	}
}

func TestGridXYZ(t *testing.T) {
	g := NewGrid(2, 2)
	g.NoData = -1
	g.HasNoData = true
	g.Data = []float64{1, 2, 3, -1}

	cols, rows := g.Dims()
	if cols != 2 || rows != 2 {
		t.Errorf("got dims (%d, %d), want (2, 2)", cols, rows)
	}

	// row 0 of the plot is the bottom raster row
	if got := g.Z(0, 0); got != 3 {
		t.Errorf("got Z(0,0) = %v, want 3", got)
	}
	if got := g.Z(0, 1); got != 1 {
		t.Errorf("got Z(0,1) = %v, want 1", got)
	}
	if got := g.Z(1, 0); !math.IsNaN(got) {
		t.Errorf("got Z(1,0) = %v, want NaN for nodata", got)
	}
}
