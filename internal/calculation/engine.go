package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wgoal/wealth-planner/internal/domain"
)

// PlanEngine orchestrates the goal-planning calculations for one scenario.
// It has no internal state beyond logging configuration; evaluations are
// independent and may run concurrently.
type PlanEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewPlanEngine creates a new plan engine with a no-op logger.
func NewPlanEngine() *PlanEngine {
	return &PlanEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *PlanEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunPlan evaluates a complete plan: the derived target wealth, the two
// scenario solves (required return and required savings), the savings gap,
// the projected final wealth at the reference rate, and the three wealth
// trajectories used for charting and reporting. Infeasible solves surface as
// nil results in the summary, never as an error.
func (pe *PlanEngine) RunPlan(ctx context.Context, input *domain.PlanInput) (*domain.PlanSummary, error) {
	_ = ctx

	// Input validation is the config layer's job; guard only the invariants
	// the math cannot survive.
	if input.HorizonYears <= 0 {
		return nil, fmt.Errorf("horizon must be positive, got %d years", input.HorizonYears)
	}
	if !input.SafeWithdrawalRate.IsPositive() {
		return nil, fmt.Errorf("safe withdrawal rate must be positive, got %s", input.SafeWithdrawalRate.String())
	}

	target := input.TargetWealth()

	summary := &domain.PlanSummary{
		GoalName:           input.GoalName,
		TargetWealth:       target,
		HorizonYears:       input.HorizonYears,
		CurrentNetWorth:    input.CurrentNetWorth,
		CurrentSavings:     input.MonthlyContribution,
		FixedReferenceRate: input.FixedReferenceRate,
		InflationRate:      input.InflationRate,
	}

	// Scenario A: the return the portfolio must generate with the current
	// contribution held fixed.
	cagr, err := RequiredRate(input.CurrentNetWorth, target, input.HorizonYears, input.MonthlyContribution)
	switch {
	case err == nil:
		summary.RequiredCAGR = &cagr
		summary.GoalPath = GenerateTrajectory(input.CurrentNetWorth, input.MonthlyContribution, cagr, input.HorizonYears)
	case errors.Is(err, ErrInfeasible):
		pe.Logger.Infof("required-return scenario is infeasible for target %s over %d years", target.StringFixed(2), input.HorizonYears)
	default:
		return nil, fmt.Errorf("required rate solve failed: %w", err)
	}

	// Scenario B: the contribution needed when the return is pinned to the
	// fixed reference rate.
	payment, err := RequiredPayment(input.CurrentNetWorth, target, input.HorizonYears, input.FixedReferenceRate)
	switch {
	case err == nil:
		summary.RequiredMonthlySavings = &payment
		summary.SavingsGap = payment.Sub(input.MonthlyContribution)
	case errors.Is(err, ErrInfeasible):
		pe.Logger.Infof("required-savings scenario is infeasible at the %s reference rate", input.FixedReferenceRate.StringFixed(4))
	default:
		return nil, fmt.Errorf("required payment solve failed: %w", err)
	}

	summary.ProjectedFinalWealth = FutureValue(input.CurrentNetWorth, input.MonthlyContribution, input.HorizonYears, input.FixedReferenceRate)
	summary.ReferencePath = GenerateTrajectory(input.CurrentNetWorth, input.MonthlyContribution, input.FixedReferenceRate, input.HorizonYears)
	summary.CashPath = GenerateTrajectory(input.CurrentNetWorth, input.MonthlyContribution, decimal.Zero, input.HorizonYears)

	if pe.Debug {
		pe.Logger.Debugf("PLAN EVALUATION BREAKDOWN:")
		pe.Logger.Debugf("==========================")
		pe.Logger.Debugf("Current Net Worth:      %s", input.CurrentNetWorth.StringFixed(2))
		pe.Logger.Debugf("Target Wealth:          %s", target.StringFixed(2))
		pe.Logger.Debugf("Horizon:                %d years", input.HorizonYears)
		if summary.RequiredCAGR != nil {
			pe.Logger.Debugf("Required CAGR:          %s%%", summary.RequiredCAGR.Mul(decimal.NewFromInt(100)).StringFixed(2))
		} else {
			pe.Logger.Debugf("Required CAGR:          infeasible")
		}
		if summary.RequiredMonthlySavings != nil {
			pe.Logger.Debugf("Required Savings:       %s/month", summary.RequiredMonthlySavings.StringFixed(2))
			pe.Logger.Debugf("Savings Gap:            %s/month", summary.SavingsGap.StringFixed(2))
		} else {
			pe.Logger.Debugf("Required Savings:       infeasible")
		}
		pe.Logger.Debugf("Projected Final Wealth: %s", summary.ProjectedFinalWealth.StringFixed(2))
		pe.Logger.Debugf("")
	}

	return summary, nil
}
