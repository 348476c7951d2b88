package service

import "home-goal/domain"

// Evaluate compares monthlyPayment to monthlyIncome against thresholdRatio.
// The ratio is undefined for a zero income, which is reported as invalid input.
func Evaluate(
	monthlyPayment int64,
	monthlyIncome int64,
	thresholdRatio float64,
) (domain.RiskAssessment, error) {
	if monthlyPayment < 0 {
		return domain.RiskAssessment{}, domain.NewInvalidInput("monthly_payment", "pago mensual inválido")
	}
	if monthlyIncome <= 0 {
		return domain.RiskAssessment{}, domain.NewInvalidInput("monthly_income", "el ingreso mensual debe ser positivo")
	}
	if !isFinite(thresholdRatio) || thresholdRatio < 0 {
		return domain.RiskAssessment{}, domain.NewInvalidInput("threshold_ratio", "umbral inválido")
	}

	ratio := float64(monthlyPayment) / float64(monthlyIncome)
	return domain.RiskAssessment{
		PaymentToIncomeRatio: ratio,
		OverThreshold:        ratio > thresholdRatio,
		Threshold:            thresholdRatio,
	}, nil
}
