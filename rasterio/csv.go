package rasterio

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"ndvi-tools/cellindex"
	"ndvi-tools/raster"
)

// WriteRowsCSV writes a tabular raster projection as x,y,value lines.
func WriteRowsCSV(rows []raster.Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	if _, err := f.WriteString("x,y,value\n"); err != nil {
		return err
	}

	for i, row := range rows {
		if i%10000 == 0 {
			logrus.Infof("Writing row %d", i)
		}
		if _, err := f.WriteString(fmt.Sprintf("%v,%v,%v\n", row.X, row.Y, row.Value)); err != nil {
			return err
		}
	}
	if err = f.Sync(); err != nil {
		return err
	}
	return nil
}

// WriteCellsCSV writes aggregated S2 cells as s2_id;value;geom lines.
func WriteCellsCSV(cellData []cellindex.CellData, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	if _, err := f.WriteString("s2_id;value;geom\n"); err != nil {
		return err
	}

	for i, cell := range cellData {
		if i%10000 == 0 {
			logrus.Infof("Writing cell %d", i)
		}
		if _, err := f.WriteString(cell.String() + "\n"); err != nil {
			return err
		}
	}
	if err = f.Sync(); err != nil {
		return err
	}
	return nil
}
