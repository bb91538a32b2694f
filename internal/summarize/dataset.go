package summarize

import (
	"errors"
	"fmt"

	"github.com/tabshield/tabshield-cli/internal/dataset"
	"github.com/tabshield/tabshield-cli/internal/disclose"
)

// ErrNoColumns indicates a dataset with no columns at all, which cannot be
// summarized. This is a per-dataset data-shape error; other datasets in the
// same run are unaffected.
var ErrNoColumns = errors.New("summarize: dataset has no columns")

// Dataset summarizes every column of ds in its original order and assembles
// the per-dataset record, including the controlled row total.
func Dataset(ds *dataset.Dataset, opt Options) (*DatasetSummary, error) {
	if len(ds.Columns) == 0 {
		return nil, fmt.Errorf("%s: %w", ds.Name, ErrNoColumns)
	}
	total, err := disclose.Apply(ds.NumRows())
	if err != nil {
		return nil, fmt.Errorf("%s: row total: %w", ds.Name, err)
	}
	sum := &DatasetSummary{
		Name:      ds.Name,
		TotalRows: total,
		Columns:   make([]ColumnSummary, 0, len(ds.Columns)),
	}
	for _, col := range ds.Columns {
		cs, err := Column(col, opt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ds.Name, err)
		}
		sum.Columns = append(sum.Columns, cs)
	}
	return sum, nil
}
