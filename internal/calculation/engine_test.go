package calculation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgoal/wealth-planner/internal/domain"
)

func examplePlan() *domain.PlanInput {
	return &domain.PlanInput{
		GoalName:            "Financial Freedom",
		CurrentNetWorth:     decimal.NewFromInt(100000),
		MonthlyContribution: decimal.NewFromInt(1000),
		HorizonYears:        20,
		DesiredMonthlySpend: decimal.NewFromInt(3000),
		SafeWithdrawalRate:  decimal.NewFromFloat(0.04),
		FixedReferenceRate:  decimal.NewFromFloat(0.07),
		InflationRate:       decimal.NewFromFloat(0.025),
	}
}

func TestRunPlan_WorkedExample(t *testing.T) {
	engine := NewPlanEngine()
	summary, err := engine.RunPlan(context.Background(), examplePlan())
	require.NoError(t, err)

	// 3000 * 12 / 0.04
	assert.True(t, summary.TargetWealth.Equal(decimal.NewFromInt(900000)),
		"target %s", summary.TargetWealth)

	require.True(t, summary.CAGRFeasible())
	assert.True(t, summary.RequiredCAGR.IsPositive())

	require.True(t, summary.SavingsFeasible())
	assert.True(t, summary.RequiredMonthlySavings.IsPositive())

	// The gap is the exact arithmetic difference to the current contribution.
	expectedGap := summary.RequiredMonthlySavings.Sub(decimal.NewFromInt(1000))
	assert.True(t, summary.SavingsGap.Equal(expectedGap))

	// Final wealth matches a direct future-value computation at the
	// reference rate.
	expectedFinal := FutureValue(decimal.NewFromInt(100000), decimal.NewFromInt(1000), 20, decimal.NewFromFloat(0.07))
	assert.True(t, summary.ProjectedFinalWealth.Equal(expectedFinal))

	assert.Len(t, summary.GoalPath, 21)
	assert.Len(t, summary.ReferencePath, 21)
	assert.Len(t, summary.CashPath, 21)

	// The goal path ends at the target, within solver tolerance.
	last := summary.GoalPath[len(summary.GoalPath)-1]
	diff := last.ProjectedWealth.Sub(summary.TargetWealth).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.1)), "goal path ends %s away from target", diff)
}

func TestRunPlan_InfeasibleReturnScenario(t *testing.T) {
	input := examplePlan()
	input.CurrentNetWorth = decimal.Zero
	input.MonthlyContribution = decimal.Zero

	engine := NewPlanEngine()
	summary, err := engine.RunPlan(context.Background(), input)
	require.NoError(t, err, "infeasibility is a result, not an error")

	assert.False(t, summary.CAGRFeasible())
	assert.Nil(t, summary.RequiredCAGR)
	assert.Empty(t, summary.GoalPath)

	// The savings scenario still has an answer.
	require.True(t, summary.SavingsFeasible())
	assert.True(t, summary.RequiredMonthlySavings.IsPositive())
}

func TestRunPlan_RejectsNonPositiveHorizon(t *testing.T) {
	input := examplePlan()
	input.HorizonYears = 0

	_, err := NewPlanEngine().RunPlan(context.Background(), input)
	assert.Error(t, err)
}

func TestRunPlan_RejectsNonPositiveWithdrawalRate(t *testing.T) {
	input := examplePlan()
	input.SafeWithdrawalRate = decimal.Zero

	_, err := NewPlanEngine().RunPlan(context.Background(), input)
	assert.Error(t, err)
}

func TestRunPlan_IndependentEvaluations(t *testing.T) {
	engine := NewPlanEngine()

	first, err := engine.RunPlan(context.Background(), examplePlan())
	require.NoError(t, err)
	second, err := engine.RunPlan(context.Background(), examplePlan())
	require.NoError(t, err)

	assert.True(t, first.RequiredCAGR.Equal(*second.RequiredCAGR))
	assert.True(t, first.ProjectedFinalWealth.Equal(second.ProjectedFinalWealth))
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	engine := NewPlanEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
