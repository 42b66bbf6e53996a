package domain

import (
	"github.com/shopspring/decimal"
)

// PlanInput holds one complete goal-planning scenario. Inputs are immutable
// per calculation; there is no lifecycle beyond a single evaluation.
type PlanInput struct {
	// GoalName is a display-only label for the objective (e.g. "Financial Freedom").
	GoalName string `yaml:"goal_name" json:"goal_name"`

	// CurrentNetWorth is the present value of all assets.
	CurrentNetWorth decimal.Decimal `yaml:"current_net_worth" json:"current_net_worth"`

	// MonthlyContribution is the amount currently saved per month.
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`

	// HorizonYears is the number of years until the goal date.
	HorizonYears int `yaml:"horizon_years" json:"horizon_years"`

	// DesiredMonthlySpend is the monthly spending the nest egg must sustain.
	DesiredMonthlySpend decimal.Decimal `yaml:"desired_monthly_spend" json:"desired_monthly_spend"`

	// SafeWithdrawalRate is the sustainable annual withdrawal fraction
	// (0.04 for the classic 4% rule).
	SafeWithdrawalRate decimal.Decimal `yaml:"safe_withdrawal_rate" json:"safe_withdrawal_rate"`

	// FixedReferenceRate is the assumed annual return used for the
	// required-savings scenario and the reference trajectory.
	FixedReferenceRate decimal.Decimal `yaml:"fixed_reference_rate" json:"fixed_reference_rate"`

	// InflationRate is shown in reports as a context assumption. It does not
	// enter any calculation.
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
}

// TargetWealth derives the nest egg needed to sustain the desired spending at
// the safe withdrawal rate: annual spend / withdrawal rate.
func (p *PlanInput) TargetWealth() decimal.Decimal {
	annualSpend := p.DesiredMonthlySpend.Mul(decimal.NewFromInt(12))
	return annualSpend.Div(p.SafeWithdrawalRate)
}

// ProjectionPoint is one year of a wealth trajectory.
type ProjectionPoint struct {
	Year                    int             `json:"year"`
	ProjectedWealth         decimal.Decimal `json:"projected_wealth"`
	CumulativeContributions decimal.Decimal `json:"cumulative_contributions"`
}

// PlanSummary holds the computed results for one plan evaluation. Solved
// values are nil when the corresponding scenario is mathematically
// infeasible.
type PlanSummary struct {
	GoalName     string          `json:"goal_name"`
	TargetWealth decimal.Decimal `json:"target_wealth"`

	// RequiredCAGR is the annualized return needed to reach the target with
	// the current contribution. Nil when unreachable at any bracketed rate.
	RequiredCAGR *decimal.Decimal `json:"required_cagr"`

	// RequiredMonthlySavings is the contribution needed at the fixed
	// reference rate. Nil when no finite payment exists.
	RequiredMonthlySavings *decimal.Decimal `json:"required_monthly_savings"`

	// SavingsGap is RequiredMonthlySavings minus the current contribution
	// (zero when the payment solve is infeasible).
	SavingsGap decimal.Decimal `json:"savings_gap"`

	// ProjectedFinalWealth is the horizon-end wealth at the fixed reference
	// rate with the current contribution.
	ProjectedFinalWealth decimal.Decimal `json:"projected_final_wealth"`

	// GoalPath is the trajectory at the required CAGR (empty when
	// infeasible), ReferencePath the trajectory at the fixed reference rate,
	// and CashPath the zero-return accumulation.
	GoalPath      []ProjectionPoint `json:"goal_path"`
	ReferencePath []ProjectionPoint `json:"reference_path"`
	CashPath      []ProjectionPoint `json:"cash_path"`

	// Display-only assumptions echoed into reports.
	HorizonYears       int             `json:"horizon_years"`
	CurrentNetWorth    decimal.Decimal `json:"current_net_worth"`
	CurrentSavings     decimal.Decimal `json:"current_savings"`
	FixedReferenceRate decimal.Decimal `json:"fixed_reference_rate"`
	InflationRate      decimal.Decimal `json:"inflation_rate"`
}

// CAGRFeasible reports whether the required-return scenario has a solution.
func (s *PlanSummary) CAGRFeasible() bool { return s.RequiredCAGR != nil }

// SavingsFeasible reports whether the required-savings scenario has a solution.
func (s *PlanSummary) SavingsFeasible() bool { return s.RequiredMonthlySavings != nil }

// FinalShortfall is ProjectedFinalWealth minus TargetWealth (negative when
// the current strategy falls short at the reference rate).
func (s *PlanSummary) FinalShortfall() decimal.Decimal {
	return s.ProjectedFinalWealth.Sub(s.TargetWealth)
}
