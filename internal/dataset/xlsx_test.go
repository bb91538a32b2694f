package dataset

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeXLSXFixture(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"name", "score", "active"},
		{"alice", 10, "true"},
		{"bob", 12, "false"},
		{"carol", 9}, // short row
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "scores.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeXLSXFixture(t)
	ds, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if ds.Name != "scores" {
		t.Fatalf("name = %q", ds.Name)
	}
	if len(ds.Columns) != 3 {
		t.Fatalf("columns = %d", len(ds.Columns))
	}
	if ds.NumRows() != 3 {
		t.Fatalf("rows = %d", ds.NumRows())
	}
	if ds.Columns[1].Name != "score" || ds.Columns[1].Values[1] != "12" {
		t.Fatalf("score column = %#v", ds.Columns[1])
	}
	// Short third row pads the active column with a missing value.
	if ds.Columns[2].Values[2] != "" {
		t.Fatalf("padded cell = %q", ds.Columns[2].Values[2])
	}
}
