package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/wgoal/wealth-planner/internal/domain"
)

// GenerateTrajectory produces one projection point per integer year from 0 to
// the horizon inclusive. CumulativeContributions counts the starting
// principal plus every contribution made to date, so at a zero rate it equals
// the projected wealth. Purely computed from its inputs; restartable.
func GenerateTrajectory(presentValue, monthlyContribution decimal.Decimal, annualRate decimal.Decimal, horizonYears int) []domain.ProjectionPoint {
	if horizonYears < 0 {
		return nil
	}
	annualContribution := monthlyContribution.Mul(twelve)

	points := make([]domain.ProjectionPoint, horizonYears+1)
	for year := 0; year <= horizonYears; year++ {
		contributed := presentValue.Add(annualContribution.Mul(decimal.NewFromInt(int64(year))))
		points[year] = domain.ProjectionPoint{
			Year:                    year,
			ProjectedWealth:         FutureValue(presentValue, monthlyContribution, year, annualRate),
			CumulativeContributions: contributed,
		}
	}
	return points
}
