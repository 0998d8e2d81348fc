package cellindex

import (
	"sort"
	"testing"

	"github.com/golang/geo/s2"

	"ndvi-tools/raster"
)

func TestPointToS2(t *testing.T) {
	// Create a point
	latLng := s2.LatLngFromDegrees(1.0, 2.0)

	// Create a S2 point
	s2Cell := s2.CellIDFromLatLng(latLng).Parent(11)

	// Compare the two
	desiredCell := s2.CellID(1154732675135700992)
	if s2Cell != desiredCell {
		t.Errorf("S2 cells are not equal, got %v, want %v", s2Cell, desiredCell)
	}
}

func TestIndexGrid(t *testing.T) {
	g := raster.NewGrid(2, 2)
	g.GeoTransform = [6]float64{0.0, 1.0, 0.0, 0.0, 0.0, -1.0}
	g.Data = []float64{1, 2, 3, 4}

	got, err := IndexGrid(g, Options{NumWorkers: 1, Level: 11, AggFunc: raster.Mean})
	if err != nil {
		t.Fatal(err)
	}

	wantValues := map[s2.CellID]float64{
		s2.CellID(1152921779484753920): 1,
		s2.CellID(1153105397926592512): 2,
		s2.CellID(1921714053521080320): 3,
		s2.CellID(1921892174404780032): 4,
	}
	if len(got) != len(wantValues) {
		t.Fatalf("got %d cells, want %d", len(got), len(wantValues))
	}
	for _, cd := range got {
		want, ok := wantValues[cd.Cell]
		if !ok {
			t.Errorf("unexpected cell %v", cd.Cell)
			continue
		}
		if cd.Data != want {
			t.Errorf("cell %v: got %v, want %v", cd.Cell, cd.Data, want)
		}
		if cd.Geom != cellToWKT(s2.CellFromCellID(cd.Cell)) {
			t.Errorf("cell %v: wrong geometry string", cd.Cell)
		}
	}
}

func TestIndexGridAggregates(t *testing.T) {
	// one broad cell so every sample groups together
	g := raster.NewGrid(2, 2)
	g.GeoTransform = [6]float64{0.0, 0.001, 0.0, 0.0, 0.0, -0.001}
	g.NoData = -1
	g.HasNoData = true
	g.Data = []float64{2, 4, 6, -1}

	got, err := IndexGrid(g, Options{NumWorkers: 2, Level: 5, AggFunc: raster.Sum})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d cells, want 1", len(got))
	}
	if got[0].Data != 12 {
		t.Errorf("got %v, want 12 (nodata must not contribute)", got[0].Data)
	}
}

func TestIndexGridBadLevel(t *testing.T) {
	g := raster.NewGrid(1, 1)
	if _, err := IndexGrid(g, Options{Level: 31}); err == nil {
		t.Error("expected an error for level out of range")
	}
}

func TestCellDataOrderIndependence(t *testing.T) {
	g := raster.NewGrid(3, 1)
	g.GeoTransform = [6]float64{0.0, 1.0, 0.0, 0.0, 0.0, -1.0}
	g.Data = []float64{1, 2, 3}

	a, err := IndexGrid(g, Options{NumWorkers: 1, Level: 11})
	if err != nil {
		t.Fatal(err)
	}
	b, err := IndexGrid(g, Options{NumWorkers: 3, Level: 11})
	if err != nil {
		t.Fatal(err)
	}

	sortCells := func(cd []CellData) {
		sort.Slice(cd, func(i, j int) bool { return cd[i].Cell < cd[j].Cell })
	}
	sortCells(a)
	sortCells(b)
	if len(a) != len(b) {
		t.Fatalf("got %d and %d cells", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("cell %d differs across worker counts: %v vs %v", i, a[i], b[i])
		}
	}
}
