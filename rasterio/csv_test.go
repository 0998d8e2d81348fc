package rasterio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/s2"

	"ndvi-tools/cellindex"
	"ndvi-tools/raster"
)

func TestWriteRowsCSV(t *testing.T) {
	rows := []raster.Row{
		{X: 0.5, Y: -0.5, Value: 0.61},
		{X: 1.5, Y: -0.5, Value: -0.2},
	}
	path := filepath.Join(t.TempDir(), "rows.csv")

	if err := WriteRowsCSV(rows, path); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "x,y,value\n0.5,-0.5,0.61\n1.5,-0.5,-0.2\n"
	if string(got) != want {
		t.Errorf("got %q, \nwant %q", string(got), want)
	}
}

func TestWriteCellsCSV(t *testing.T) {
	cells := []cellindex.CellData{
		{Cell: s2.CellID(1152921779484753920), Data: 0.5, Geom: "POLYGON((0 0, 0 1, 1 1, 1 0, 0 0))"},
	}
	path := filepath.Join(t.TempDir(), "cells.csv")

	if err := WriteCellsCSV(cells, path); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "s2_id;value;geom\n1152921779484753920;0.5;POLYGON((0 0, 0 1, 1 1, 1 0, 0 0))\n"
	if string(got) != want {
		t.Errorf("got %q, \nwant %q", string(got), want)
	}
}
