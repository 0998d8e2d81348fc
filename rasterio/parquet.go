package rasterio

import (
	"os"
	"sync"

	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"

	"ndvi-tools/cellindex"
	"ndvi-tools/raster"
)

const (
	// PixelRowSize approximates the in-flight footprint of one PixelRow,
	// used to size the per-worker buffers against the memory limit.
	PixelRowSize = 8 * 3
	BytesInGB    = 1024 * 1024 * 1024
)

type PixelRow struct {
	X     float64 `parquet:"x, type=DOUBLE"`
	Y     float64 `parquet:"y, type=DOUBLE"`
	Value float64 `parquet:"value, type=DOUBLE"`
}

type CellRow struct {
	S2id  int64   `parquet:"s2_id, type=INT64"`
	Value float64 `parquet:"value, type=DOUBLE"`
	Geom  string  `parquet:"geom, type=UTF8"`
}

// StreamRowsToParquet drains a channel of tabular raster rows into a snappy
// parquet file. Workers share one writer behind a mutex and flush their
// buffers to disk whenever they fill, keeping memory bounded by memLimitGB.
func StreamRowsToParquet(rows <-chan raster.Row, path string, numWorkers, memLimitGB int) error {
	var mu sync.Mutex
	var wg sync.WaitGroup
	var writeErr error

	output, err := os.Create(path)
	if err != nil {
		return err
	}

	schema := parquet.SchemaOf(new(PixelRow))
	writer := parquet.NewGenericWriter[PixelRow](output, schema, parquet.Compression(&parquet.Snappy))
	defer func() {
		if err := writer.Close(); err != nil {
			logrus.Error(err)
		}
		if err := output.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	if numWorkers < 1 {
		numWorkers = 1
	}
	rowBufferSize := (memLimitGB * BytesInGB / PixelRowSize) / (numWorkers * 3)
	if rowBufferSize < 1 {
		rowBufferSize = 1
	}

	flush := func(buf []PixelRow) error {
		mu.Lock()
		defer mu.Unlock()
		if _, err := writer.Write(buf); err != nil {
			return err
		}
		return writer.Flush()
	}

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			rowBuf := make([]PixelRow, 0, rowBufferSize)
			for row := range rows {
				rowBuf = append(rowBuf, PixelRow{row.X, row.Y, row.Value})
				if len(rowBuf) == rowBufferSize {
					logrus.Infof("Flushing %d rows", len(rowBuf))
					if err := flush(rowBuf); err != nil {
						mu.Lock()
						writeErr = err
						mu.Unlock()
						return
					}
					rowBuf = rowBuf[:0]
				}
			}
			if len(rowBuf) > 0 {
				if err := flush(rowBuf); err != nil {
					mu.Lock()
					writeErr = err
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	return writeErr
}

// WriteCellsParquet writes aggregated S2 cells to a snappy parquet file.
func WriteCellsParquet(cellData []cellindex.CellData, path string) error {
	output, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := output.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	schema := parquet.SchemaOf(new(CellRow))
	writer := parquet.NewGenericWriter[CellRow](output, schema, parquet.Compression(&parquet.Snappy))

	rows := make([]CellRow, len(cellData))
	for i, cell := range cellData {
		rows[i] = CellRow{int64(cell.Cell), cell.Data, cell.Geom}
	}
	if _, err := writer.Write(rows); err != nil {
		return err
	}
	return writer.Close()
}
