package output

import (
	"bytes"
	"fmt"

	"github.com/wgoal/wealth-planner/internal/domain"
)

// ConsoleFormatter renders the narrative plan report: situation summary, the
// two scenario outcomes, and the truncated year-by-year projection table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	var buf bytes.Buffer

	title := "WEALTH GOAL REPORT"
	if summary.GoalName != "" {
		title = fmt.Sprintf("WEALTH GOAL REPORT: %s", summary.GoalName)
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, "========================================")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "1. Situation Summary")
	fmt.Fprintf(&buf, "   Current Net Worth:    %s\n", FormatCurrency(summary.CurrentNetWorth))
	fmt.Fprintf(&buf, "   Financial Target:     %s in %d years\n", FormatCurrency(summary.TargetWealth), summary.HorizonYears)
	fmt.Fprintf(&buf, "   Current Savings:      %s/month\n", FormatCurrency(summary.CurrentSavings))
	fmt.Fprintf(&buf, "   Estimated Inflation:  %s (context only)\n", FormatPercent(summary.InflationRate))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "2. Roadmap - Scenarios")
	fmt.Fprintln(&buf, "   Scenario A: Required Return")
	if summary.CAGRFeasible() {
		fmt.Fprintf(&buf, "   To reach %s keeping your current savings of %s/month, your investments\n",
			FormatCurrency(summary.TargetWealth), FormatCurrency(summary.CurrentSavings))
		fmt.Fprintf(&buf, "   must generate a compound annual return (CAGR) of: %s\n", FormatPercent(*summary.RequiredCAGR))
	} else {
		fmt.Fprintln(&buf, "   Not achievable: no rate of return reaches the target with the current inputs.")
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "   Scenario B: Savings Effort")
	if summary.SavingsFeasible() {
		fmt.Fprintf(&buf, "   Assuming a fixed return of %s, your monthly savings should be: %s (gap: %s)\n",
			FormatPercent(summary.FixedReferenceRate),
			FormatCurrency(*summary.RequiredMonthlySavings),
			FormatCurrency(summary.SavingsGap))
	} else {
		fmt.Fprintln(&buf, "   Not achievable at the configured reference rate.")
	}
	fmt.Fprintln(&buf)

	points, label := reportPath(summary)
	fmt.Fprintf(&buf, "3. Wealth Projection - %s (first years and final)\n", label)
	fmt.Fprintf(&buf, "   %-6s %20s %20s\n", "Year", "Projected Wealth", "Total Contributed")
	for _, p := range TruncateTrajectory(points) {
		fmt.Fprintf(&buf, "   %-6d %20s %20s\n", p.Year, FormatCurrency(p.ProjectedWealth.Round(2)), FormatCurrency(p.CumulativeContributions.Round(2)))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Projected final wealth at %s: %s (%s vs target)\n",
		FormatPercent(summary.FixedReferenceRate),
		FormatCurrency(summary.ProjectedFinalWealth.Round(2)),
		FormatCurrency(summary.FinalShortfall().Round(2)))

	return buf.Bytes(), nil
}
