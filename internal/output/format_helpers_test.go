package output

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp switches the working directory to a fresh temp dir so tests that
// write timestamped report files do not litter the repo.
func chdirTemp(t *testing.T) func() {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	return func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "1234.56 EUR", FormatCurrency(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "0.00 EUR", FormatCurrency(decimal.Zero))
	assert.Equal(t, "-500.00 EUR", FormatCurrency(decimal.NewFromInt(-500)))
	assert.Equal(t, "1000000.00 EUR", FormatCurrency(decimal.NewFromInt(1000000)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "7.00%", FormatPercent(decimal.NewFromFloat(0.07)))
	assert.Equal(t, "8.31%", FormatPercent(decimal.NewFromFloat(0.0831)))
	assert.Equal(t, "0.00%", FormatPercent(decimal.Zero))
	assert.Equal(t, "-2.50%", FormatPercent(decimal.NewFromFloat(-0.025)))
}

func TestTruncateTrajectory(t *testing.T) {
	long := sampleTrajectory(0, 1000, 20)
	got := TruncateTrajectory(long)
	require.Len(t, got, 7)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 20},
		[]int{got[0].Year, got[1].Year, got[2].Year, got[3].Year, got[4].Year, got[5].Year, got[6].Year})
}

func TestTruncateTrajectory_ShortSlicesUntouched(t *testing.T) {
	short := sampleTrajectory(0, 1000, 6)
	assert.Len(t, TruncateTrajectory(short), 7)
	assert.Equal(t, short, TruncateTrajectory(short))

	assert.Empty(t, TruncateTrajectory(nil))
}

func TestReportPath(t *testing.T) {
	points, label := reportPath(sampleSummary())
	assert.Equal(t, "goal path (required return)", label)
	assert.Len(t, points, 21)

	points, label = reportPath(infeasibleSummary())
	assert.Equal(t, "reference path (fixed rate)", label)
	assert.Len(t, points, 21)
}

func TestReportPath_FeasibleButEmptyPathFallsBack(t *testing.T) {
	s := sampleSummary()
	s.GoalPath = nil

	points, label := reportPath(s)
	assert.Equal(t, "reference path (fixed rate)", label)
	assert.Equal(t, s.ReferencePath, points)
}
