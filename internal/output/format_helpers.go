package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/wgoal/wealth-planner/internal/domain"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as EUR currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation. The trailing code (rather than a symbol) keeps the string
// latin-1 safe for PDF standard fonts.
func FormatCurrency(amount decimal.Decimal) string { return amount.StringFixed(2) + " EUR" }

// FormatPercent formats a rate fraction (0.07) as a percentage ("7.00%").
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(2) + "%"
}

func intToString(i int) string { return strconv.Itoa(i) }

// TruncateTrajectory keeps the first six points (years 0-5) plus the final
// point, the slice shown in report tables. Trajectories short enough to fit
// are returned whole.
func TruncateTrajectory(points []domain.ProjectionPoint) []domain.ProjectionPoint {
	if len(points) <= 7 {
		return points
	}
	out := make([]domain.ProjectionPoint, 0, 7)
	out = append(out, points[:6]...)
	return append(out, points[len(points)-1])
}

// reportPath picks the trajectory shown in report tables: the goal path when
// the required-return solve is feasible, otherwise the reference path.
func reportPath(summary *domain.PlanSummary) (points []domain.ProjectionPoint, label string) {
	if summary.CAGRFeasible() && len(summary.GoalPath) > 0 {
		return summary.GoalPath, "goal path (required return)"
	}
	return summary.ReferencePath, "reference path (fixed rate)"
}
