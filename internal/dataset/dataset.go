// Package dataset loads tabular input files into an in-memory, read-only
// column model. Column names and raw cell strings are the only surface the
// summarizer consumes; type interpretation happens downstream.
package dataset

import (
	"path/filepath"
	"strings"
)

// Dataset is one loaded table. It is owned by a single report generation
// and never mutated after load.
type Dataset struct {
	Name    string
	Columns []Column
}

// Column is a named sequence of raw string values in row order. An empty or
// whitespace-only value is treated as missing.
type Column struct {
	Name   string
	Values []string
}

// NumRows returns the number of data rows in the dataset.
func (d *Dataset) NumRows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// IsMissing reports whether a raw cell value counts as a missing value.
func IsMissing(v string) bool {
	return strings.TrimSpace(v) == ""
}

// Stem derives the dataset name from a file path: the base name truncated
// at the first dot, so "output/input.csv.gz" becomes "input".
func Stem(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}
