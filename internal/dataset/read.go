package dataset

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoHeader indicates an input file with no header row; a table we cannot
// name columns for cannot be summarized.
var ErrNoHeader = errors.New("dataset: no header row")

// ReadFile loads one tabular file, dispatching on its extension.
// Supported: .csv, .tsv, .csv.gz, .xlsx.
func ReadFile(path string) (*Dataset, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".csv.gz"):
		return readGzipCSV(path)
	case strings.HasSuffix(lower, ".csv"):
		return readDelimited(path, ',')
	case strings.HasSuffix(lower, ".tsv"):
		return readDelimited(path, '\t')
	case strings.HasSuffix(lower, ".xlsx"):
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("dataset: cannot read %q: unsupported extension", path)
	}
}

func readDelimited(path string, delim rune) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readCSV(f, path, delim)
}

func readGzipCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gunzip %s: %w", path, err)
	}
	defer gz.Close()
	return readCSV(gz, path, ',')
}

func readCSV(src io.Reader, path string, delim rune) (*Dataset, error) {
	r := csv.NewReader(src)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	ds := &Dataset{Name: Stem(path)}
	ds.Columns = make([]Column, len(header))
	for i, h := range header {
		ds.Columns[i].Name = strings.TrimSpace(h)
	}

	row := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d of %s: %w", row+1, path, err)
		}
		row++
		for i := range ds.Columns {
			v := ""
			if i < len(rec) {
				v = rec[i]
			}
			ds.Columns[i].Values = append(ds.Columns[i].Values, v)
		}
	}
	return ds, nil
}
