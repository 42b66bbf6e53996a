package integration

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgoal/wealth-planner/internal/calculation"
	"github.com/wgoal/wealth-planner/internal/config"
	"github.com/wgoal/wealth-planner/internal/domain"
	"github.com/wgoal/wealth-planner/internal/output"
)

func evaluateExamplePlan(t *testing.T) *domain.PlanSummary {
	t.Helper()
	input, err := config.NewInputParser().LoadFromFile("../testdata/example_plan.yaml")
	require.NoError(t, err)

	summary, err := calculation.NewPlanEngine().RunPlan(context.Background(), input)
	require.NoError(t, err)
	return summary
}

func TestReportGeneration_AllFormats(t *testing.T) {
	summary := evaluateExamplePlan(t)

	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { require.NoError(t, os.Chdir(orig)) }()

	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			filename, err := output.GenerateReport(summary, format)
			require.NoError(t, err)

			info, err := os.Stat(filename)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
			assert.True(t, strings.HasPrefix(filename, "wealth_plan_"))
		})
	}
}

func TestConsoleReportContent(t *testing.T) {
	summary := evaluateExamplePlan(t)

	data, err := output.ConsoleFormatter{}.Format(summary)
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, "WEALTH GOAL REPORT: Financial Freedom")
	assert.Contains(t, report, "900000.00 EUR in 20 years")
	assert.Contains(t, report, "Scenario A: Required Return")
	assert.Contains(t, report, "Scenario B: Savings Effort")
}
