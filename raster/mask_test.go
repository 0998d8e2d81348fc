package raster

import "testing"

func TestApplyMask(t *testing.T) {
	g := NewGrid(2, 2)
	g.NoData = -9999
	g.HasNoData = true
	g.Data = []float64{1, 2, 3, 4}

	mask := NewGrid(2, 2)
	mask.NoData = 0
	mask.HasNoData = true
	mask.Data = []float64{1, 0, 1, 0}

	out, err := ApplyMask(g, mask)
	if err != nil {
		t.Fatal(err)
	}

	// exactly the mask's nodata cells are dropped, the rest are untouched
	if got := out.Value(0, 0); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	if got := out.Value(0, 1); !out.IsNoData(got) {
		t.Errorf("got %v, want nodata", got)
	}
	if got := out.Value(1, 0); got != 3 {
		t.Errorf("got %v, want 3", got)
	}
	if got := out.Value(1, 1); !out.IsNoData(got) {
		t.Errorf("got %v, want nodata", got)
	}
}

func TestApplyMaskNoMarkerOnInput(t *testing.T) {
	g := NewGrid(1, 1)
	g.Data = []float64{7}

	mask := NewGrid(1, 1)
	mask.NoData = 0
	mask.HasNoData = true
	mask.Data = []float64{0}

	out, err := ApplyMask(g, mask)
	if err != nil {
		t.Fatal(err)
	}
	if !out.HasNoData {
		t.Fatal("masked grid needs a nodata marker")
	}
	if got := out.Value(0, 0); !out.IsNoData(got) {
		t.Errorf("got %v, want nodata", got)
	}
}

func TestApplyMaskGeometryMismatch(t *testing.T) {
	g := NewGrid(2, 2)
	mask := NewGrid(2, 3)
	if _, err := ApplyMask(g, mask); err == nil {
		t.Error("expected an error for mismatched geometry")
	}
}
