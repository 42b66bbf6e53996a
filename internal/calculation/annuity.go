package calculation

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInfeasible signals that no real solution exists for a requested rate or
// payment. It is an expected outcome under aggressive targets, not a fault;
// callers present it as "plan not mathematically achievable".
var ErrInfeasible = errors.New("no achievable solution for the requested plan")

// Solver bracket and convergence settings. Rates are effective annual; a
// required return outside the bracket is reported as infeasible rather than
// extrapolated.
var (
	minAnnualRate = decimal.NewFromFloat(-0.60)
	maxAnnualRate = decimal.NewFromFloat(10.0)
)

const maxSolverIterations = 200

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// monthlyRate converts an effective annual rate to the equivalent monthly
// compounding rate, (1+R)^(1/12)-1. The twelfth root goes through float64;
// the error is far below solver tolerance.
func monthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	if annualRate.IsZero() {
		return decimal.Zero
	}
	m := math.Pow(one.Add(annualRate).InexactFloat64(), 1.0/12.0) - 1
	return decimal.NewFromFloat(m)
}

// annualizeMonthly converts a monthly rate back to effective annual,
// (1+i)^12 - 1.
func annualizeMonthly(monthly decimal.Decimal) decimal.Decimal {
	return one.Add(monthly).Pow(twelve).Sub(one)
}

// FutureValue compounds the principal monthly and adds the future value of an
// ordinary annuity of monthly contributions over the given number of years.
// A zero rate degenerates to simple cash accumulation. Deterministic, no
// failure modes.
func FutureValue(presentValue, monthlyContribution decimal.Decimal, years int, annualRate decimal.Decimal) decimal.Decimal {
	return futureValueMonthly(presentValue, monthlyContribution, years*12, monthlyRate(annualRate))
}

// futureValueMonthly is the monthly-rate form shared by FutureValue and the
// rate solver: FV = PV*(1+i)^n + PMT*((1+i)^n - 1)/i.
func futureValueMonthly(presentValue, monthlyContribution decimal.Decimal, months int, monthly decimal.Decimal) decimal.Decimal {
	if months <= 0 {
		return presentValue
	}
	n := decimal.NewFromInt(int64(months))
	if monthly.IsZero() {
		return presentValue.Add(monthlyContribution.Mul(n))
	}
	growth := one.Add(monthly).Pow(n)
	fvPrincipal := presentValue.Mul(growth)
	fvContributions := monthlyContribution.Mul(growth.Sub(one)).Div(monthly)
	return fvPrincipal.Add(fvContributions)
}

// RequiredRate solves for the monthly rate satisfying the annuity equation
// given fixed payments and present value, then annualizes via (1+i)^12 - 1.
// The future value grows monotonically with the rate for non-negative
// principal and contributions, so the solve is a bracketed bisection over
// [minAnnualRate, maxAnnualRate] (same shape as a break-even withdrawal-rate
// search). Returns ErrInfeasible when the target lies outside the bracket or
// the solve does not converge.
func RequiredRate(presentValue, targetValue decimal.Decimal, years int, monthlyContribution decimal.Decimal) (decimal.Decimal, error) {
	if years <= 0 {
		return decimal.Zero, ErrInfeasible
	}
	months := years * 12

	lo := monthlyRate(minAnnualRate)
	hi := monthlyRate(maxAnnualRate)

	fvLo := futureValueMonthly(presentValue, monthlyContribution, months, lo)
	fvHi := futureValueMonthly(presentValue, monthlyContribution, months, hi)
	if targetValue.LessThan(fvLo) || targetValue.GreaterThan(fvHi) {
		return decimal.Zero, ErrInfeasible
	}

	// Value tolerance scaled to the target, floored for tiny targets.
	tolerance := decimal.Max(targetValue.Abs().Mul(decimal.New(1, -9)), decimal.New(1, -9))

	mid := lo
	for iter := 0; iter < maxSolverIterations; iter++ {
		mid = lo.Add(hi).Div(decimal.NewFromInt(2))
		fv := futureValueMonthly(presentValue, monthlyContribution, months, mid)

		diff := fv.Sub(targetValue)
		if diff.Abs().LessThan(tolerance) {
			return annualizeMonthly(mid), nil
		}
		if diff.IsNegative() {
			lo = mid
		} else {
			hi = mid
		}
	}

	// The interval is vanishingly small after the iteration cap; accept the
	// midpoint only if it still reproduces the target reasonably.
	residual := futureValueMonthly(presentValue, monthlyContribution, months, mid).Sub(targetValue).Abs()
	loose := decimal.Max(targetValue.Abs().Mul(decimal.New(1, -6)), decimal.New(1, -6))
	if residual.GreaterThan(loose) {
		return decimal.Zero, ErrInfeasible
	}
	return annualizeMonthly(mid), nil
}

// RequiredPayment solves for the level monthly payment needed to reach the
// target at a fixed annual rate. The closed-form annuity solve mirrors a
// financial PMT function where payments are negative cash flows; the absolute
// value is returned. Returns ErrInfeasible on degenerate input (non-positive
// horizon or a rate at or below -100%).
func RequiredPayment(presentValue, targetValue decimal.Decimal, years int, fixedAnnualRate decimal.Decimal) (decimal.Decimal, error) {
	if years <= 0 {
		return decimal.Zero, ErrInfeasible
	}
	if fixedAnnualRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return decimal.Zero, ErrInfeasible
	}
	months := decimal.NewFromInt(int64(years * 12))

	monthly := monthlyRate(fixedAnnualRate)
	if monthly.IsZero() {
		return targetValue.Sub(presentValue).Div(months).Abs(), nil
	}

	growth := one.Add(monthly).Pow(months)
	annuityFactor := growth.Sub(one).Div(monthly)
	payment := targetValue.Sub(presentValue.Mul(growth)).Div(annuityFactor)
	return payment.Abs(), nil
}
