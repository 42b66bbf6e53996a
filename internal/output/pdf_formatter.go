package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/wgoal/wealth-planner/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter builds the exportable plan report: situation summary, the
// two-scenario roadmap, and the truncated projection table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.SetAutoPageBreak(true, pdfMarginBottom)

	title := "Wealth Goal Report"
	if summary.GoalName != "" {
		title = fmt.Sprintf("Wealth Goal Report - %s", summary.GoalName)
	}
	doc.SetHeaderFunc(func() {
		doc.SetFont("Helvetica", "B", 16)
		doc.CellFormat(pdfContentWidth, 10, title, "", 1, "C", false, 0, "")
		doc.Ln(6)
	})
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d - generated %s", doc.PageNo(), time.Now().Format("2 January 2006")), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	// 1. Situation summary
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, "1. Situation Summary", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	p.labelValue(doc, "Current Net Worth:", FormatCurrency(summary.CurrentNetWorth))
	p.labelValue(doc, "Financial Target:", fmt.Sprintf("%s in %d years", FormatCurrency(summary.TargetWealth), summary.HorizonYears))
	p.labelValue(doc, "Estimated Inflation:", FormatPercent(summary.InflationRate))
	doc.Ln(5)

	// 2. Roadmap
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, "2. Roadmap - Scenarios", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 8, "Scenario A: Required Return", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	if summary.CAGRFeasible() {
		doc.MultiCell(0, 6, fmt.Sprintf(
			"To reach %s while keeping your current savings of %s/month, your investments must generate a compound annual return (CAGR) of: %s",
			FormatCurrency(summary.TargetWealth), FormatCurrency(summary.CurrentSavings), FormatPercent(*summary.RequiredCAGR)), "", "L", false)
	} else {
		doc.MultiCell(0, 6, "Not achievable: no rate of return reaches the target with the current inputs.", "", "L", false)
	}
	doc.Ln(3)

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 8, "Scenario B: Savings Effort", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	if summary.SavingsFeasible() {
		doc.MultiCell(0, 6, fmt.Sprintf(
			"Assuming a fixed return of %s, you should raise your monthly savings to: %s (gap: %s)",
			FormatPercent(summary.FixedReferenceRate), FormatCurrency(*summary.RequiredMonthlySavings), FormatCurrency(summary.SavingsGap)), "", "L", false)
	} else {
		doc.MultiCell(0, 6, "Not achievable at the configured reference rate.", "", "L", false)
	}
	doc.Ln(8)

	// 3. Projection table (first years and final)
	points, label := reportPath(summary)
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, "3. Wealth Projection (First Years and Final)", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 6, fmt.Sprintf("Series: %s", label), "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 10)
	doc.SetFillColor(240, 240, 240)
	doc.CellFormat(20, 8, "Year", "1", 0, "C", true, 0, "")
	doc.CellFormat(55, 8, "Projected Wealth", "1", 0, "C", true, 0, "")
	doc.CellFormat(55, 8, "Total Contributed", "1", 1, "C", true, 0, "")
	for _, pt := range TruncateTrajectory(points) {
		doc.CellFormat(20, 8, intToString(pt.Year), "1", 0, "C", false, 0, "")
		doc.CellFormat(55, 8, FormatCurrency(pt.ProjectedWealth.Round(2)), "1", 0, "R", false, 0, "")
		doc.CellFormat(55, 8, FormatCurrency(pt.CumulativeContributions.Round(2)), "1", 1, "R", false, 0, "")
	}

	doc.Ln(6)
	doc.SetFont("Helvetica", "I", 10)
	doc.MultiCell(0, 6, fmt.Sprintf("Projected final wealth at %s with current savings: %s (%s vs target). Calculations are estimates based on constant monthly compounding.",
		FormatPercent(summary.FixedReferenceRate), FormatCurrency(summary.ProjectedFinalWealth.Round(2)), FormatCurrency(summary.FinalShortfall().Round(2))), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p PDFFormatter) labelValue(doc *fpdf.Fpdf, label, value string) {
	doc.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
	doc.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}
