package output

import (
	"bytes"
	"encoding/csv"

	"github.com/wgoal/wealth-planner/internal/domain"
)

// CSVTrajectoryExporter writes the full year-by-year trajectories, one row
// per projection year with the three series side by side.
type CSVTrajectoryExporter struct{}

func (c CSVTrajectoryExporter) Name() string { return "csv" }

func (c CSVTrajectoryExporter) Format(summary *domain.PlanSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year", "GoalPathWealth", "ReferencePathWealth", "CashPathWealth", "CumulativeContributions"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, ref := range summary.ReferencePath {
		goal := ""
		if i < len(summary.GoalPath) {
			goal = summary.GoalPath[i].ProjectedWealth.StringFixed(2)
		}
		cash := ""
		if i < len(summary.CashPath) {
			cash = summary.CashPath[i].ProjectedWealth.StringFixed(2)
		}
		row := []string{
			intToString(ref.Year),
			goal,
			ref.ProjectedWealth.StringFixed(2),
			cash,
			ref.CumulativeContributions.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
