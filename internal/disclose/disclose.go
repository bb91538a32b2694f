// Package disclose implements the disclosure-control transform that every
// record count must pass through before it is written to a report. Counts
// are rounded to the nearest multiple of five (half rounds up) and small
// results are suppressed entirely, so that no statistic in a released
// document reveals the exact size of a small group of records.
//
// The transform applies to counts only. Non-count statistics such as a
// minimum, maximum or mean are reported as computed; rounding those would
// corrupt the statistic without protecting any record count.
package disclose

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	roundBase         = 5
	suppressThreshold = 5
)

// ErrNegativeCount indicates a negative value reached Apply. Internal
// callers only ever count records, so this is a programming error and
// should abort report generation for the affected dataset.
var ErrNegativeCount = errors.New("disclose: negative count")

// Count is a disclosure-controlled record count: either a rounded value or
// the redaction marker. The zero value is redacted, so a Count that never
// went through Apply cannot leak anything.
type Count struct {
	n  int
	ok bool
}

// Redacted reports whether the count was suppressed.
func (c Count) Redacted() bool { return !c.ok }

// Value returns the rounded count; ok is false for a redacted count.
func (c Count) Value() (n int, ok bool) { return c.n, c.ok }

// String renders the count for display. Redacted counts render as the
// suppression marker.
func (c Count) String() string {
	if !c.ok {
		return "[REDACTED]"
	}
	return strconv.Itoa(c.n)
}

// Apply rounds n to the nearest multiple of five, rounding a half up to the
// larger multiple, and suppresses any result of five or below. A count of
// zero therefore always comes back redacted.
func Apply(n int) (Count, error) {
	if n < 0 {
		return Count{}, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	rounded := (n + roundBase/2) / roundBase * roundBase
	if rounded <= suppressThreshold {
		return Count{}, nil
	}
	return Count{n: rounded, ok: true}, nil
}
