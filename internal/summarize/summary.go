// Package summarize computes per-column distributional summaries for a
// dataset. Each column's semantic kind is inferred from its raw values and
// the matching summary strategy is applied; every record count produced
// along the way passes through the disclosure transform before it is stored.
package summarize

import (
	"time"

	"github.com/tabshield/tabshield-cli/internal/disclose"
)

// Kind is a column's inferred semantic kind.
type Kind string

const (
	KindDate        Kind = "date"
	KindBoolean     Kind = "boolean"
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
	KindText        Kind = "text"
)

// Options controls summarization behavior. The disclosure policy itself is
// fixed and not configurable here.
type Options struct {
	// HistogramBins is the number of equal-width bins for numeric columns.
	HistogramBins int
	// DateBin is the calendar granularity for date columns: "month" or "year".
	DateBin string
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{HistogramBins: 10, DateBin: "month"}
}

// ColumnSummary describes one column. Total and Missing, and every count
// inside the kind-specific statistics, are disclosure-controlled.
type ColumnSummary struct {
	Name    string
	Kind    Kind
	Total   disclose.Count
	Missing disclose.Count

	// Exactly one of the following is populated, by Kind. Text columns
	// carry no value-level detail at all.
	Categories []CategoryCount
	Numeric    *NumericStats
	Dates      *DateStats
	Bool       *BoolStats
}

// CategoryCount is one categorical value and its controlled frequency.
// Ordering within a summary is by descending raw count, ties broken by
// value, so output is deterministic.
type CategoryCount struct {
	Value string
	Count disclose.Count
}

// NumericStats holds numeric column statistics. Min/Max/Mean and the
// quantiles are not counts and are reported as computed.
type NumericStats struct {
	Min    float64
	Max    float64
	Mean   float64
	Q25    float64
	Median float64
	Q75    float64
	Bins   []Bin
}

// Bin is one equal-width histogram bin over [Low, High].
type Bin struct {
	Low   float64
	High  float64
	Count disclose.Count
}

// DateStats holds date column statistics with calendar-binned counts.
type DateStats struct {
	Min  time.Time
	Max  time.Time
	Bins []DateBin
}

// DateBin is one calendar period ("2006-01" for month granularity) and its
// controlled count, emitted in ascending period order.
type DateBin struct {
	Period string
	Count  disclose.Count
}

// BoolStats holds controlled true/false counts for a boolean column.
type BoolStats struct {
	True  disclose.Count
	False disclose.Count
}

// DatasetSummary is the assembled per-dataset record handed to a renderer:
// one ColumnSummary per source column, in the source column order.
type DatasetSummary struct {
	Name      string
	TotalRows disclose.Count
	Columns   []ColumnSummary
}
