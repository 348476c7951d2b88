package service

import (
	"home-goal/domain"
	"home-goal/logging"
)

type TermRecommendationService struct {
	loanService *LoanService
	policy      domain.Policy
	logger      logging.Logger
}

func NewTermRecommendationService(
	loanService *LoanService,
	policy domain.Policy,
	logger logging.Logger,
) *TermRecommendationService {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &TermRecommendationService{
		loanService: loanService,
		policy:      policy,
		logger:      logger,
	}
}

// RecommendTerm evaluates every repayment term in [MinYears, MaxYears] and
// recommends the shortest one whose payment stays within the risk threshold.
func (s *TermRecommendationService) RecommendTerm(
	input domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {

	// Validaciones
	if input.MinYears <= 0 || input.MaxYears <= 0 {
		return domain.TermRecommendationResult{}, domain.NewInvalidInput("min_years", "plazos inválidos")
	}
	if input.MinYears > input.MaxYears {
		return domain.TermRecommendationResult{}, domain.NewInvalidInput("min_years", "plazo mínimo mayor que máximo")
	}
	if input.MaxYears > MaxRepaymentYears {
		return domain.TermRecommendationResult{}, domain.NewInvalidInput("max_years", "plazo máximo excede el límite")
	}
	// Evita evaluar rangos demasiado amplios
	if input.MaxYears-input.MinYears > MaxTermRangeYears {
		return domain.TermRecommendationResult{}, domain.NewInvalidInput("max_years", "rango de plazos demasiado amplio")
	}
	if input.Goal.MonthlyIncome <= 0 {
		return domain.TermRecommendationResult{}, domain.NewInvalidInput("monthly_income", "el ingreso mensual debe ser positivo")
	}

	options := make([]domain.TermOption, 0, input.MaxYears-input.MinYears+1)
	recommended := 0

	for years := input.MinYears; years <= input.MaxYears; years++ {
		goal := input.Goal
		goal.RepaymentYears = years

		loan, err := s.loanService.Calculate(goal, input.StressApplied)
		if err != nil {
			return domain.TermRecommendationResult{}, err
		}

		risk, err := Evaluate(loan.MonthlyPayment, goal.MonthlyIncome, s.policy.RiskThreshold)
		if err != nil {
			return domain.TermRecommendationResult{}, err
		}

		options = append(options, domain.TermOption{
			RepaymentYears:       years,
			MonthlyPayment:       loan.MonthlyPayment,
			TotalInterest:        loan.TotalInterest,
			PaymentToIncomeRatio: risk.PaymentToIncomeRatio,
			OverThreshold:        risk.OverThreshold,
		})

		// El pago baja con el plazo: el primero bajo el umbral es el más corto
		if recommended == 0 && !risk.OverThreshold {
			recommended = years
		}
	}

	if recommended == 0 {
		s.logger.Info("no repayment term within risk threshold",
			logging.Int("min_years", input.MinYears),
			logging.Int("max_years", input.MaxYears),
		)
	}

	return domain.TermRecommendationResult{
		RecommendedYears: recommended,
		Options:          options,
	}, nil
}
