package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/wgoal/wealth-planner/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an interactive
// trajectory chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercent,
	"currp": func(d *decimal.Decimal) string { return FormatCurrency(*d) },
	"pctp":  func(d *decimal.Decimal) string { return FormatPercent(*d) },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries flattens a trajectory to plain floats for the chart script.
func chartSeries(points []domain.ProjectionPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.ProjectedWealth.Round(2).InexactFloat64()
	}
	return out
}

func (h HTMLFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	years := make([]int, len(summary.ReferencePath))
	for i, p := range summary.ReferencePath {
		years[i] = p.Year
	}

	tablePoints, tableLabel := reportPath(summary)

	data := struct {
		*domain.PlanSummary
		Years       []int
		GoalSeries  []float64
		RefSeries   []float64
		CashSeries  []float64
		Target      float64
		TablePoints []domain.ProjectionPoint
		TableLabel  string
	}{
		PlanSummary: summary,
		Years:       years,
		GoalSeries:  chartSeries(summary.GoalPath),
		RefSeries:   chartSeries(summary.ReferencePath),
		CashSeries:  chartSeries(summary.CashPath),
		Target:      summary.TargetWealth.Round(2).InexactFloat64(),
		TablePoints: TruncateTrajectory(tablePoints),
		TableLabel:  tableLabel,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
