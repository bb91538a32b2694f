package summarize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tabshield/tabshield-cli/internal/dataset"
	"github.com/tabshield/tabshield-cli/internal/disclose"
)

// Categorical threshold: a column qualifies when its distinct non-missing
// values are few both absolutely and relative to the non-missing row count.
// Anything denser is treated as free text so near-unique value counts are
// never emitted.
const (
	maxCategories     = 100
	categoryRowFactor = 2
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// Kind inference is a first-match-wins ordered rule list, so the whole
// policy is auditable in one place. Rules requiring value parsing only
// match when at least one non-missing value exists; the categorical rule is
// the fall-through for an all-missing column.
type rule struct {
	kind  Kind
	match func(vals []string) bool
	build func(s *ColumnSummary, vals []string, opt Options) error
}

var rules = []rule{
	{KindDate, matchDate, buildDate},
	{KindBoolean, matchBool, buildBool},
	{KindNumeric, matchNumeric, buildNumeric},
	{KindCategorical, matchCategorical, buildCategorical},
	{KindText, func([]string) bool { return true }, buildText},
}

// Column computes the summary for one column. Pure function of the column's
// values; a mixed or unparseable column falls through the rule order rather
// than failing.
func Column(col dataset.Column, opt Options) (ColumnSummary, error) {
	if opt.HistogramBins <= 0 {
		opt.HistogramBins = DefaultOptions().HistogramBins
	}
	if opt.DateBin == "" {
		opt.DateBin = DefaultOptions().DateBin
	}

	var vals []string
	missing := 0
	for _, v := range col.Values {
		if dataset.IsMissing(v) {
			missing++
			continue
		}
		vals = append(vals, strings.TrimSpace(v))
	}

	s := ColumnSummary{Name: col.Name}
	var err error
	if s.Total, err = disclose.Apply(len(col.Values)); err != nil {
		return s, fmt.Errorf("column %s total: %w", col.Name, err)
	}
	if s.Missing, err = disclose.Apply(missing); err != nil {
		return s, fmt.Errorf("column %s missing: %w", col.Name, err)
	}

	for _, r := range rules {
		if !r.match(vals) {
			continue
		}
		s.Kind = r.kind
		if err := r.build(&s, vals, opt); err != nil {
			return s, fmt.Errorf("column %s: %w", col.Name, err)
		}
		return s, nil
	}
	// Unreachable: the text rule always matches.
	s.Kind = KindText
	return s, nil
}

func parseDate(v string) (time.Time, bool) {
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func matchDate(vals []string) bool {
	if len(vals) == 0 {
		return false
	}
	for _, v := range vals {
		if _, ok := parseDate(v); !ok {
			return false
		}
	}
	return true
}

func matchBool(vals []string) bool {
	if len(vals) == 0 {
		return false
	}
	for _, v := range vals {
		switch strings.ToLower(v) {
		case "0", "1", "true", "false":
		default:
			return false
		}
	}
	return true
}

func matchNumeric(vals []string) bool {
	if len(vals) == 0 {
		return false
	}
	for _, v := range vals {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
	}
	return true
}

func matchCategorical(vals []string) bool {
	if len(vals) == 0 {
		return true
	}
	distinct := map[string]struct{}{}
	for _, v := range vals {
		distinct[v] = struct{}{}
		if len(distinct) > maxCategories {
			return false
		}
	}
	return len(distinct)*categoryRowFactor <= len(vals)
}

func buildDate(s *ColumnSummary, vals []string, opt Options) error {
	layout := "2006-01"
	if opt.DateBin == "year" {
		layout = "2006"
	}
	st := &DateStats{}
	raw := map[string]int{}
	for i, v := range vals {
		t, _ := parseDate(v)
		if i == 0 || t.Before(st.Min) {
			st.Min = t
		}
		if i == 0 || t.After(st.Max) {
			st.Max = t
		}
		raw[t.Format(layout)]++
	}
	periods := make([]string, 0, len(raw))
	for p := range raw {
		periods = append(periods, p)
	}
	sort.Strings(periods)
	for _, p := range periods {
		c, err := disclose.Apply(raw[p])
		if err != nil {
			return err
		}
		st.Bins = append(st.Bins, DateBin{Period: p, Count: c})
	}
	s.Dates = st
	return nil
}

func buildBool(s *ColumnSummary, vals []string, _ Options) error {
	var trues, falses int
	for _, v := range vals {
		switch strings.ToLower(v) {
		case "1", "true":
			trues++
		default:
			falses++
		}
	}
	st := &BoolStats{}
	var err error
	if st.True, err = disclose.Apply(trues); err != nil {
		return err
	}
	if st.False, err = disclose.Apply(falses); err != nil {
		return err
	}
	s.Bool = st
	return nil
}

func buildNumeric(s *ColumnSummary, vals []string, opt Options) error {
	nums := make([]float64, len(vals))
	for i, v := range vals {
		nums[i], _ = strconv.ParseFloat(v, 64)
	}
	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)

	st := &NumericStats{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q25:    quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q75:    quantile(sorted, 0.75),
	}
	var sum float64
	for _, x := range nums {
		sum += x
	}
	st.Mean = sum / float64(len(nums))

	// A single distinct value yields one degenerate bin holding all mass.
	nbins := opt.HistogramBins
	if st.Min == st.Max {
		nbins = 1
	}
	width := (st.Max - st.Min) / float64(nbins)
	counts := make([]int, nbins)
	for _, x := range nums {
		idx := nbins - 1
		if width > 0 {
			idx = int((x - st.Min) / width)
			if idx >= nbins {
				idx = nbins - 1
			}
		}
		counts[idx]++
	}
	for i, n := range counts {
		c, err := disclose.Apply(n)
		if err != nil {
			return err
		}
		st.Bins = append(st.Bins, Bin{
			Low:   st.Min + float64(i)*width,
			High:  st.Min + float64(i+1)*width,
			Count: c,
		})
	}
	s.Numeric = st
	return nil
}

func buildCategorical(s *ColumnSummary, vals []string, _ Options) error {
	raw := map[string]int{}
	for _, v := range vals {
		raw[v]++
	}
	type kv struct {
		value string
		n     int
	}
	order := make([]kv, 0, len(raw))
	for v, n := range raw {
		order = append(order, kv{v, n})
	}
	// Sort by the raw, unrounded count; the controlled count is what gets
	// stored and displayed.
	sort.Slice(order, func(i, j int) bool {
		if order[i].n == order[j].n {
			return order[i].value < order[j].value
		}
		return order[i].n > order[j].n
	})
	for _, e := range order {
		c, err := disclose.Apply(e.n)
		if err != nil {
			return err
		}
		s.Categories = append(s.Categories, CategoryCount{Value: e.value, Count: c})
	}
	return nil
}

func buildText(*ColumnSummary, []string, Options) error {
	// Free text and identifiers get no value-level detail; Total and
	// Missing are already set.
	return nil
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
