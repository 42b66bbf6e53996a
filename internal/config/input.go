package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/wgoal/wealth-planner/internal/domain"
)

// InputParser handles parsing of plan input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.PlanInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlanInput(&input); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &input, nil
}

// ValidatePlanInput rejects out-of-range scalars before they reach the
// engine. Infeasibility is not validated here; an aggressive but well-formed
// plan is a legitimate input whose outcome is reported by the engine.
func (ip *InputParser) ValidatePlanInput(input *domain.PlanInput) error {
	if input.CurrentNetWorth.LessThan(decimal.Zero) {
		return fmt.Errorf("current net worth cannot be negative")
	}
	if input.MonthlyContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if input.HorizonYears <= 0 || input.HorizonYears > 60 {
		return fmt.Errorf("horizon years must be between 1 and 60")
	}
	if input.DesiredMonthlySpend.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("desired monthly spend must be positive")
	}
	if input.SafeWithdrawalRate.LessThanOrEqual(decimal.Zero) || input.SafeWithdrawalRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("safe withdrawal rate must be between 0 and 20%%")
	}
	if input.FixedReferenceRate.LessThan(decimal.Zero) || input.FixedReferenceRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("fixed reference rate must be between 0 and 20%%")
	}
	if input.InflationRate.LessThan(decimal.Zero) || input.InflationRate.GreaterThan(decimal.NewFromFloat(0.10)) {
		return fmt.Errorf("inflation rate must be between 0 and 10%%")
	}

	return nil
}

// CreateExamplePlan creates an example plan with the classic 4% rule inputs.
func (ip *InputParser) CreateExamplePlan() *domain.PlanInput {
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

// SavePlan writes a plan back to a YAML file (used by the init command).
func SavePlan(input *domain.PlanInput, filename string) error {
	b, err := yaml.Marshal(input)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
