// Package report turns a DatasetSummary into a release-ready document and
// records a manifest of each run. Renderers only display counts that have
// already been disclosure-controlled; nothing here recomputes or reconciles
// them.
package report

import (
	"fmt"
	"strings"

	"github.com/tabshield/tabshield-cli/internal/summarize"
)

// Markdown renders a compact report suitable for review or standalone docs.
func Markdown(sum *summarize.DatasetSummary) string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	b.WriteString(fmt.Sprintf("Dataset: %s\n", sum.Name))
	b.WriteString(fmt.Sprintf("Rows: %s\n", sum.TotalRows))
	b.WriteString(fmt.Sprintf("Columns: %d\n", len(sum.Columns)))

	b.WriteString("\n[COLUMNS]\n")
	for _, c := range sum.Columns {
		b.WriteString(fmt.Sprintf("- %s: %s (total %s, missing %s)\n",
			safeName(c.Name), c.Kind, c.Total, c.Missing))
		switch c.Kind {
		case summarize.KindNumeric:
			n := c.Numeric
			b.WriteString(fmt.Sprintf("  min %.4g, max %.4g, mean %.4g, q25 %.4g, median %.4g, q75 %.4g\n",
				n.Min, n.Max, n.Mean, n.Q25, n.Median, n.Q75))
			for _, bin := range n.Bins {
				b.WriteString(fmt.Sprintf("  [%.4g, %.4g): %s\n", bin.Low, bin.High, bin.Count))
			}
		case summarize.KindDate:
			d := c.Dates
			b.WriteString(fmt.Sprintf("  min %s, max %s\n",
				d.Min.Format("2006-01-02"), d.Max.Format("2006-01-02")))
			for _, bin := range d.Bins {
				b.WriteString(fmt.Sprintf("  %s: %s\n", bin.Period, bin.Count))
			}
		case summarize.KindCategorical:
			for _, cat := range c.Categories {
				b.WriteString(fmt.Sprintf("  %s: %s\n", safeVal(cat.Value), cat.Count))
			}
		case summarize.KindBoolean:
			b.WriteString(fmt.Sprintf("  true: %s\n  false: %s\n", c.Bool.True, c.Bool.False))
		}
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
