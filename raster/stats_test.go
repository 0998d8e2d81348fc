package raster

import "testing"

func TestSummarize(t *testing.T) {
	g := NewGrid(2, 2)
	g.NoData = -9999
	g.HasNoData = true
	g.Data = []float64{1, 3, -9999, 5}

	stats := Summarize(g)
	if stats.Count != 3 {
		t.Errorf("got count %d, want 3", stats.Count)
	}
	if stats.Min != 1 || stats.Max != 5 {
		t.Errorf("got min %v max %v, want 1 and 5", stats.Min, stats.Max)
	}
	if stats.Mean != 3 {
		t.Errorf("got mean %v, want 3", stats.Mean)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	g := NewGrid(2, 1)
	g.NoData = 0
	g.HasNoData = true

	stats := Summarize(g)
	if stats != (Stats{}) {
		t.Errorf("got %+v, want zero Stats", stats)
	}
}
