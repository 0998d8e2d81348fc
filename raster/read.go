package raster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"
)

var registerOnce sync.Once

// RegisterDrivers makes GDAL's raster drivers available. Safe to call from
// every entry point; registration only happens once.
func RegisterDrivers() {
	registerOnce.Do(godal.RegisterAll)
}

// BandInfo describes one band of a dataset for the inspect path.
type BandInfo struct {
	Index     int
	DataType  string
	NoData    float64
	HasNoData bool
	BlockW    int
	BlockH    int
}

// Info is the inspection summary of a raster dataset.
type Info struct {
	Path         string
	Width        int
	Height       int
	GeoTransform [6]float64
	Projection   string
	Bands        []BandInfo
}

// ReadInfo opens a dataset and summarizes its structure without reading
// pixel data.
func ReadInfo(path string) (info Info, err error) {
	RegisterDrivers()

	ds, err := godal.Open(path)
	if err != nil {
		logrus.Error(err)
		return Info{}, err
	}
	defer func() {
		err = errors.Join(err, ds.Close())
	}()

	struc := ds.Structure()
	info = Info{
		Path:       path,
		Width:      struc.SizeX,
		Height:     struc.SizeY,
		Projection: ds.Projection(),
	}
	if gt, gtErr := ds.GeoTransform(); gtErr == nil {
		info.GeoTransform = gt
	} else {
		logrus.Warnf("no geotransform on %s: %v", path, gtErr)
	}

	for i, band := range ds.Bands() {
		bs := band.Structure()
		bi := BandInfo{
			Index:    i + 1,
			DataType: bs.DataType.String(),
			BlockW:   bs.BlockSizeX,
			BlockH:   bs.BlockSizeY,
		}
		bi.NoData, bi.HasNoData = band.NoData()
		info.Bands = append(info.Bands, bi)
	}
	return info, nil
}

// ReadBand reads one band (1-based index) of a dataset into a Grid. Blocks
// are produced serially and read by a pool of workers; compressed rasters
// need the read itself serialized, which bandSource's mutex takes care of.
func ReadBand(path string, bandIdx, numWorkers int) (grid *Grid, err error) {
	RegisterDrivers()

	ds, err := godal.Open(path)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	defer func() {
		err = errors.Join(err, ds.Close())
	}()

	bands := ds.Bands()
	if bandIdx < 1 || bandIdx > len(bands) {
		return nil, fmt.Errorf("band %d out of range: %s has %d bands", bandIdx, path, len(bands))
	}

	grid, err = readBandGrid(ds, &bands[bandIdx-1], numWorkers)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	return grid, nil
}

// ReadBands reads several bands of the same dataset, sharing one open
// handle. Indices are 1-based; the result is ordered like the input.
func ReadBands(path string, bandIdxs []int, numWorkers int) (grids []*Grid, err error) {
	RegisterDrivers()

	ds, err := godal.Open(path)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	defer func() {
		err = errors.Join(err, ds.Close())
	}()

	bands := ds.Bands()
	for _, idx := range bandIdxs {
		if idx < 1 || idx > len(bands) {
			return nil, fmt.Errorf("band %d out of range: %s has %d bands", idx, path, len(bands))
		}
		grid, err := readBandGrid(ds, &bands[idx-1], numWorkers)
		if err != nil {
			logrus.Error(err)
			return nil, err
		}
		grids = append(grids, grid)
	}
	return grids, nil
}

// bandSource wraps a godal band with the dataset-level georeferencing its
// grid needs, plus the lock required to read compressed rasters.
type bandSource struct {
	band *godal.Band
	mu   sync.Mutex
}

func readBandGrid(ds *godal.Dataset, band *godal.Band, numWorkers int) (*Grid, error) {
	bs := band.Structure()
	grid := NewGrid(bs.SizeX, bs.SizeY)
	grid.Projection = ds.Projection()
	if gt, err := ds.GeoTransform(); err == nil {
		grid.GeoTransform = gt
	} else {
		logrus.Warnf("no geotransform, using identity: %v", err)
	}
	if nodata, ok := band.NoData(); ok {
		grid.NoData = nodata
		grid.HasNoData = true
	} else {
		logrus.Warn("NoData not set")
	}

	if numWorkers < 1 {
		numWorkers = 1
	}
	src := &bandSource{band: band}
	blocks := genBlocks(band)
	if err := fillFromBlocks(src, blocks, grid, numWorkers); err != nil {
		return nil, err
	}
	return grid, nil
}

// genBlocks produces the band's blocks on a channel to be consumed by the
// read workers. Production is serial; there is nothing to gain from
// parallelising this side.
func genBlocks(band *godal.Band) <-chan godal.Block {
	logrus.Debug("Entered genBlocks")
	blocks := make(chan godal.Block)
	firstBlock := band.Structure().FirstBlock()
	go func() {
		defer close(blocks)
		for block, ok := firstBlock, true; ok; block, ok = block.Next() {
			blocks <- block
		}
	}()
	logrus.Debug("Exited genBlocks")
	return blocks
}

func fillFromBlocks(src *bandSource, blocks <-chan godal.Block, grid *Grid, numWorkers int) error {
	logrus.Debug("Entered fillFromBlocks")
	var wg sync.WaitGroup
	errCh := make(chan error, numWorkers)

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for block := range blocks {
				logrus.Debugf("Reading block at [%v, %v]", block.X0, block.Y0)
				if err := readBlockInto(src, block, grid); err != nil {
					logrus.Error(err)
					// keep draining so the producer can finish
					select {
					case errCh <- err:
					default:
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	logrus.Debug("Exited fillFromBlocks")
	return <-errCh
}

// readBlockInto copies one block of the band into its place in the grid.
// Blocks never overlap, so workers write disjoint regions and only the GDAL
// read needs the lock.
func readBlockInto(src *bandSource, block godal.Block, grid *Grid) error {
	blockBuf := make([]float64, block.W*block.H)
	if err := lockedRead(src, block, blockBuf); err != nil {
		return err
	}
	for row := 0; row < block.H; row++ {
		destOff := (block.Y0+row)*grid.Width + block.X0
		copy(grid.Data[destOff:destOff+block.W], blockBuf[row*block.W:(row+1)*block.W])
	}
	return nil
}

// Locking is required to read from compressed rasters.
func lockedRead(src *bandSource, block godal.Block, blockBuf []float64) error {
	src.mu.Lock()
	defer src.mu.Unlock()
	if err := src.band.Read(block.X0, block.Y0, blockBuf, block.W, block.H); err != nil {
		return err
	}
	return nil
}
