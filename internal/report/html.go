package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/tabshield/tabshield-cli/internal/summarize"
)

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"num":  func(f float64) string { return fmt.Sprintf("%.4g", f) },
	"date": func(t interface{ Format(string) string }) string { return t.Format("2006-01-02") },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Dataset report: {{.Name}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #999; padding: 0.3em 0.6em; text-align: left; }
caption { font-weight: bold; text-align: left; padding-bottom: 0.3em; }
</style>
</head>
<body>
<h1>Dataset report: {{.Name}}</h1>
<p>Rows: {{.TotalRows}}<br>Columns: {{len .Columns}}</p>
{{range .Columns}}
<h2>{{.Name}}</h2>
<p>Kind: {{.Kind}} &mdash; total {{.Total}}, missing {{.Missing}}</p>
{{if .Numeric}}
<p>min {{num .Numeric.Min}}, max {{num .Numeric.Max}}, mean {{num .Numeric.Mean}},
q25 {{num .Numeric.Q25}}, median {{num .Numeric.Median}}, q75 {{num .Numeric.Q75}}</p>
<table><caption>Histogram</caption>
<tr><th>Bin</th><th>Count</th></tr>
{{range .Numeric.Bins}}<tr><td>[{{num .Low}}, {{num .High}})</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{end}}
{{if .Dates}}
<p>min {{date .Dates.Min}}, max {{date .Dates.Max}}</p>
<table><caption>Counts by period</caption>
<tr><th>Period</th><th>Count</th></tr>
{{range .Dates.Bins}}<tr><td>{{.Period}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{end}}
{{if .Categories}}
<table><caption>Frequencies</caption>
<tr><th>Value</th><th>Count</th></tr>
{{range .Categories}}<tr><td>{{.Value}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{end}}
{{if .Bool}}
<table><caption>Frequencies</caption>
<tr><th>Value</th><th>Count</th></tr>
<tr><td>true</td><td>{{.Bool.True}}</td></tr>
<tr><td>false</td><td>{{.Bool.False}}</td></tr>
</table>
{{end}}
{{end}}
</body>
</html>
`))

// HTML renders a self-contained HTML document for one dataset summary.
func HTML(sum *summarize.DatasetSummary) (string, error) {
	var b strings.Builder
	if err := htmlTmpl.Execute(&b, sum); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return b.String(), nil
}
