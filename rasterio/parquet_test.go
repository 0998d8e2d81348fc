package rasterio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"ndvi-tools/raster"
)

func TestStreamRowsToParquet(t *testing.T) {
	rowCh := make(chan raster.Row)
	go func() {
		defer close(rowCh)
		for i := 0; i < 100; i++ {
			rowCh <- raster.Row{X: float64(i), Y: float64(-i), Value: float64(i) / 100}
		}
	}()

	path := filepath.Join(t.TempDir(), "rows.parquet")
	if err := StreamRowsToParquet(rowCh, path, 4, 1); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}

	got, err := parquet.Read[PixelRow](f, st.Size())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 100 {
		t.Errorf("got %d rows, want 100", len(got))
	}
	seen := make(map[float64]bool)
	for _, row := range got {
		if row.Y != -row.X {
			t.Errorf("row %v: y should mirror x", row)
		}
		seen[row.X] = true
	}
	if len(seen) != 100 {
		t.Errorf("got %d distinct rows, want 100", len(seen))
	}
}
