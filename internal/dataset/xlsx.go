package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX loads the first sheet of an .xlsx workbook. The first row is the
// header; short rows are padded with missing values.
func ReadXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
	}

	header := rows[0]
	ds := &Dataset{Name: Stem(path)}
	ds.Columns = make([]Column, len(header))
	for i, h := range header {
		ds.Columns[i].Name = strings.TrimSpace(h)
	}
	for _, rec := range rows[1:] {
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
