package service

import (
	"math"

	"github.com/shopspring/decimal"

	"home-goal/domain"
	"home-goal/logging"
)

var decimalHundred = decimal.NewFromInt(100)

type LoanService struct {
	policy domain.Policy
	logger logging.Logger
}

// NewLoanService creates a LoanService bound to the given policy.
func NewLoanService(policy domain.Policy, logger logging.Logger) *LoanService {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &LoanService{policy: policy, logger: logger}
}

// Calculate computes the loan figures for inputs, adding the policy stress
// adjustment to the interest rate when stressApplied is true.
func (s *LoanService) Calculate(
	inputs domain.GoalInputs,
	stressApplied bool,
) (domain.LoanResult, error) {
	stress := 0.0
	if stressApplied {
		stress = s.policy.StressAdjustment
	}

	result, err := computeLoan(inputs, s.policy.UnitScale, stress, s.policy.LoanCeiling)
	if err != nil {
		return domain.LoanResult{}, err
	}

	s.logger.Debug("loan calculated",
		logging.Int64("max_loan", result.MaxLoan),
		logging.Int64("monthly_payment", result.MonthlyPayment),
		logging.Bool("stress", stressApplied),
	)
	return result, nil
}

// ComputeLoan derives the maximum loan, down payment and monthly payment for
// inputs. stressAdjustment is added to the annual rate; pass 0 for the
// unstressed figure.
func ComputeLoan(
	inputs domain.GoalInputs,
	stressAdjustment float64,
	policyLoanCeiling int64,
) (domain.LoanResult, error) {
	return computeLoan(inputs, UnitScale, stressAdjustment, policyLoanCeiling)
}

func computeLoan(
	inputs domain.GoalInputs,
	unitScale int64,
	stressAdjustment float64,
	ceiling int64,
) (domain.LoanResult, error) {

	// Validar entrada
	if err := validateLoanInputs(inputs); err != nil {
		return domain.LoanResult{}, err
	}
	if unitScale <= 0 {
		return domain.LoanResult{}, domain.NewInvalidInput("unit_scale", "debe ser positivo")
	}
	if !isFinite(stressAdjustment) || stressAdjustment < 0 {
		return domain.LoanResult{}, domain.NewInvalidInput("stress_adjustment", "debe ser mayor o igual a cero")
	}
	if ceiling < 0 {
		return domain.LoanResult{}, domain.NewInvalidInput("loan_ceiling", "debe ser mayor o igual a cero")
	}

	price := decimal.NewFromFloat(inputs.HomePrice).
		Mul(decimal.NewFromInt(unitScale)).
		Round(0)

	// El préstamo nunca supera el LTV: se trunca hacia abajo
	loan := price.Mul(decimal.NewFromFloat(inputs.LTVPercent)).
		Div(decimalHundred).
		Floor()
	if limit := decimal.NewFromInt(ceiling); loan.GreaterThan(limit) {
		loan = limit
	}

	homePriceAbsolute := price.IntPart()
	maxLoan := loan.IntPart()

	effectiveRate := inputs.InterestRateAnnual + stressAdjustment
	monthlyRate := effectiveRate / 12
	n := float64(inputs.RepaymentYears * 12)

	payment := amortizedPayment(float64(maxLoan), monthlyRate, n)
	total := int64(math.Round(payment * n))
	interest := total - maxLoan
	if interest < 0 {
		interest = 0
	}

	return domain.LoanResult{
		HomePriceAbsolute: homePriceAbsolute,
		MaxLoan:           maxLoan,
		DownPayment:       homePriceAbsolute - maxLoan,
		MonthlyPayment:    int64(math.Round(payment)),
		TotalPayment:      total,
		TotalInterest:     interest,
		EffectiveRate:     effectiveRate,
		StressApplied:     stressAdjustment > 0,
	}, nil
}

// amortizedPayment returns the fixed payment that retires loan over n periods
// at rate r per period.
func amortizedPayment(loan, r, n float64) float64 {
	// Sin interés la fórmula divide entre cero: se reparte el capital en línea recta
	if r == 0 {
		return loan / n
	}

	growth := math.Pow(1+r, n)
	if growth == 1 {
		// r por debajo de la precisión de float64
		return loan / n
	}
	return loan * r * growth / (growth - 1)
}

func validateLoanInputs(inputs domain.GoalInputs) error {
	if !isFinite(inputs.HomePrice) || inputs.HomePrice <= 0 {
		return domain.NewInvalidInput("home_price", "precio inválido")
	}
	if inputs.HomePrice > MaxHomePrice {
		return domain.NewInvalidInput("home_price", "precio excede el máximo permitido")
	}
	if !isFinite(inputs.LTVPercent) || inputs.LTVPercent < 0 || inputs.LTVPercent > 100 {
		return domain.NewInvalidInput("ltv_percent", "debe estar entre 0 y 100")
	}
	if !isFinite(inputs.InterestRateAnnual) || inputs.InterestRateAnnual < 0 {
		return domain.NewInvalidInput("interest_rate_annual", "tasa inválida")
	}
	if inputs.InterestRateAnnual > MaxInterestRate {
		return domain.NewInvalidInput("interest_rate_annual", "tasa excede el máximo permitido")
	}
	if inputs.RepaymentYears <= 0 {
		return domain.NewInvalidInput("repayment_years", "plazo inválido")
	}
	if inputs.RepaymentYears > MaxRepaymentYears {
		return domain.NewInvalidInput("repayment_years", "plazo excede el máximo permitido")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
