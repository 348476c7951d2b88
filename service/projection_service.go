package service

import (
	"math"

	"github.com/shopspring/decimal"

	"home-goal/domain"
)

var decimalTwelve = decimal.NewFromInt(12)

// ComputeAchievementHorizon returns the number of simulated years until
// capital, compounded annually at annualReturnRate with twelve monthly
// contributions added each year, reaches target. The result saturates at
// maxYears when the target is not reached.
func ComputeAchievementHorizon(
	target int64,
	capital int64,
	monthlyContribution int64,
	annualReturnRate float64,
	maxYears int,
) (int, error) {
	result, err := Project(target, capital, monthlyContribution, annualReturnRate, maxYears)
	if err != nil {
		return 0, err
	}
	return result.AchievementYears, nil
}

// Project runs the same simulation as ComputeAchievementHorizon and also
// reports whether the target was reached and the capital at the final year.
func Project(
	target int64,
	capital int64,
	monthlyContribution int64,
	annualReturnRate float64,
	maxYears int,
) (domain.ProjectionResult, error) {

	// Validaciones
	if target < 0 {
		return domain.ProjectionResult{}, domain.NewInvalidInput("target_amount", "monto objetivo inválido")
	}
	if capital < 0 {
		return domain.ProjectionResult{}, domain.NewInvalidInput("starting_capital", "capital inválido")
	}
	if monthlyContribution < 0 {
		return domain.ProjectionResult{}, domain.NewInvalidInput("monthly_contribution", "aporte mensual inválido")
	}
	if !isFinite(annualReturnRate) || annualReturnRate < MinReturnRate {
		return domain.ProjectionResult{}, domain.NewInvalidInput("annual_return_rate", "rendimiento inválido")
	}
	if maxYears <= 0 {
		return domain.ProjectionResult{}, domain.NewInvalidInput("max_years", "horizonte inválido")
	}

	if capital >= target {
		return domain.ProjectionResult{AchievementYears: 0, Reached: true, FinalCapital: capital}, nil
	}

	goal := decimal.NewFromInt(target)
	current := decimal.NewFromInt(capital)
	growth := decimal.NewFromInt(1).Add(decimal.NewFromFloat(annualReturnRate))
	annualContribution := decimal.NewFromInt(monthlyContribution).Mul(decimalTwelve)

	// Acotado por maxYears aunque el capital nunca crezca
	years := 0
	for current.LessThan(goal) && years < maxYears {
		current = current.Mul(growth).Add(annualContribution).Round(2)
		years++
	}

	return domain.ProjectionResult{
		AchievementYears: years,
		Reached:          current.GreaterThanOrEqual(goal),
		FinalCapital:     saturatedInt64(current),
	}, nil
}

var decimalMaxInt64 = decimal.NewFromInt(math.MaxInt64)

// saturatedInt64 floors d to a whole unit, clamping at math.MaxInt64.
func saturatedInt64(d decimal.Decimal) int64 {
	if d.GreaterThanOrEqual(decimalMaxInt64) {
		return math.MaxInt64
	}
	return d.Floor().IntPart()
}

// OneYearProgress is the share of target covered by capital plus twelve
// monthly contributions, clamped to [0, 1].
func OneYearProgress(target, capital, monthlyContribution int64) float64 {
	if target <= 0 {
		return 1
	}
	progress := (float64(capital) + 12*float64(monthlyContribution)) / float64(target)
	return math.Max(0, math.Min(1, progress))
}
