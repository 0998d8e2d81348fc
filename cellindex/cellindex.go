// Package cellindex aggregates grid samples into S2 cells, turning a raster
// (typically a classified forest map) into per-cell summary values.
package cellindex

import (
	"fmt"
	"sync"

	"github.com/golang/geo/s2"
	"github.com/sirupsen/logrus"

	"ndvi-tools/raster"
)

// CellData is one aggregated S2 cell: its id, the aggregate of the samples
// that fell inside it, and the cell polygon as WKT.
type CellData struct {
	Cell s2.CellID
	Data float64
	Geom string
}

func (c CellData) String() string {
	return fmt.Sprintf("%v;%v;%s", int64(c.Cell), c.Data, c.Geom)
}

// Options configures an indexing run.
type Options struct {
	NumWorkers int
	Level      int
	AggFunc    raster.AggFunc
}

type cellSample struct {
	cell s2.CellID
	data float64
}

// IndexGrid maps every valid sample of a geographic (lat/lng) grid to its
// containing S2 cell at opts.Level and reduces each cell's samples with
// opts.AggFunc. Rows are fanned out to a worker pool, grouped by cell as
// they come in, then aggregated.
func IndexGrid(g *raster.Grid, opts Options) ([]CellData, error) {
	if opts.Level < 0 || opts.Level > 30 {
		return nil, fmt.Errorf("S2 level must be in [0, 30], got %d", opts.Level)
	}
	if opts.NumWorkers < 1 {
		opts.NumWorkers = 1
	}
	if opts.AggFunc == nil {
		opts.AggFunc = raster.Mean
	}

	rows := genRows(g)
	samples := processRows(g, rows, opts)
	grouped := groupByCell(samples)

	return aggCellResults(grouped, opts.AggFunc), nil
}

// genRows produces row indices on a channel for the workers to consume.
// Production is serial; the per-row work downstream is where the time goes.
func genRows(g *raster.Grid) <-chan int {
	logrus.Debug("Entered genRows")
	rows := make(chan int)
	go func() {
		defer close(rows)
		for row := 0; row < g.Height; row++ {
			rows <- row
		}
	}()
	logrus.Debug("Exited genRows")
	return rows
}

func processRows(g *raster.Grid, rows <-chan int, opts Options) chan cellSample {
	logrus.Debug("Entered processRows")
	resCh := make(chan cellSample, g.Width)
	var wg sync.WaitGroup

	wg.Add(opts.NumWorkers)
	for i := 0; i < opts.NumWorkers; i++ {
		go func() {
			defer wg.Done()
			for row := range rows {
				indexRow(g, row, opts.Level, resCh)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resCh)
	}()

	logrus.Debug("Exited processRows")
	return resCh
}

func indexRow(g *raster.Grid, row, level int, resCh chan<- cellSample) {
	for col := 0; col < g.Width; col++ {
		value := g.Value(row, col)
		if g.IsNoData(value) {
			continue
		}
		lng, lat := g.CellCenter(row, col)
		latLng := s2.LatLngFromDegrees(lat, lng)
		cell := s2.CellIDFromLatLng(latLng).Parent(level)
		resCh <- cellSample{cell, value}
	}
}

func groupByCell(resCh <-chan cellSample) map[s2.CellID][]float64 {
	logrus.Debug("Entered groupByCell")
	outMap := make(map[s2.CellID][]float64)
	for sample := range resCh {
		outMap[sample.cell] = append(outMap[sample.cell], sample.data)
	}
	logrus.Debug("Exited groupByCell")
	return outMap
}

func aggCellResults(grouped map[s2.CellID][]float64, aggFunc raster.AggFunc) []CellData {
	logrus.Debug("Entered aggCellResults")
	var aggResults []CellData
	for cell, values := range grouped {
		geom := cellToWKT(s2.CellFromCellID(cell))
		aggResults = append(aggResults, CellData{cell, aggFunc(values...), geom})
	}
	logrus.Debug("Exited aggCellResults")
	return aggResults
}
