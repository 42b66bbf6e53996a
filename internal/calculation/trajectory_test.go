package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrajectory_LengthAndIndices(t *testing.T) {
	points := GenerateTrajectory(decimal.NewFromInt(100000), decimal.NewFromInt(1000), decimal.NewFromFloat(0.07), 20)

	require.Len(t, points, 21)
	for i, p := range points {
		assert.Equal(t, i, p.Year)
	}
}

func TestGenerateTrajectory_StartsAtPresentValue(t *testing.T) {
	pv := decimal.NewFromInt(42000)
	points := GenerateTrajectory(pv, decimal.NewFromInt(500), decimal.NewFromFloat(0.05), 5)

	require.NotEmpty(t, points)
	assert.True(t, points[0].ProjectedWealth.Equal(pv))
	assert.True(t, points[0].CumulativeContributions.Equal(pv))
}

func TestGenerateTrajectory_MonotoneForNonNegativeInputs(t *testing.T) {
	points := GenerateTrajectory(decimal.NewFromInt(10000), decimal.NewFromInt(200), decimal.NewFromFloat(0.04), 30)

	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].ProjectedWealth.GreaterThanOrEqual(points[i-1].ProjectedWealth),
			"wealth decreased between year %d and %d", i-1, i)
		assert.True(t, points[i].CumulativeContributions.GreaterThanOrEqual(points[i-1].CumulativeContributions),
			"contributions decreased between year %d and %d", i-1, i)
	}
}

func TestGenerateTrajectory_ZeroRateMatchesContributions(t *testing.T) {
	points := GenerateTrajectory(decimal.NewFromInt(5000), decimal.NewFromInt(100), decimal.Zero, 10)

	for _, p := range points {
		assert.True(t, p.ProjectedWealth.Equal(p.CumulativeContributions),
			"year %d: wealth %s != contributed %s", p.Year, p.ProjectedWealth, p.CumulativeContributions)
	}
}

func TestGenerateTrajectory_Restartable(t *testing.T) {
	pv := decimal.NewFromInt(100000)
	pmt := decimal.NewFromInt(1000)
	rate := decimal.NewFromFloat(0.07)

	first := GenerateTrajectory(pv, pmt, rate, 12)
	second := GenerateTrajectory(pv, pmt, rate, 12)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].ProjectedWealth.Equal(second[i].ProjectedWealth))
	}
}

func TestGenerateTrajectory_NegativeHorizon(t *testing.T) {
	assert.Nil(t, GenerateTrajectory(decimal.NewFromInt(1000), decimal.Zero, decimal.Zero, -1))
}
