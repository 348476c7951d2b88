package service

import (
	"home-goal/domain"
	"home-goal/logging"
)

type PlanOptions struct {
	StressApplied bool
	Selections    domain.ChallengeSelections
}

type PlanService struct {
	loanService *LoanService
	policy      domain.Policy
	logger      logging.Logger
}

func NewPlanService(loanService *LoanService, policy domain.Policy, logger logging.Logger) *PlanService {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &PlanService{
		loanService: loanService,
		policy:      policy,
		logger:      logger,
	}
}

// Policy returns the policy the service computes against.
func (s *PlanService) Policy() domain.Policy {
	return s.policy
}

// Plan runs the full projection for one goal snapshot: loan, challenge
// savings, achievement horizon, one-year progress and affordability risk.
func (s *PlanService) Plan(
	inputs domain.GoalInputs,
	opts PlanOptions,
) (domain.GoalPlan, error) {
	if inputs.MonthlyIncome < 0 {
		return domain.GoalPlan{}, domain.NewInvalidInput("monthly_income", "ingreso inválido")
	}
	if inputs.CurrentCash < 0 {
		return domain.GoalPlan{}, domain.NewInvalidInput("current_cash", "efectivo inválido")
	}
	if inputs.MonthlySavings < 0 {
		return domain.GoalPlan{}, domain.NewInvalidInput("monthly_savings", "ahorro mensual inválido")
	}

	returnRate, err := s.policy.ReturnRate(inputs.InvestmentProduct)
	if err != nil {
		return domain.GoalPlan{}, err
	}

	loan, err := s.loanService.Calculate(inputs, opts.StressApplied)
	if err != nil {
		return domain.GoalPlan{}, err
	}

	challengeSavings := SumSelectedChallenges(opts.Selections, s.policy.Challenges)
	contribution := inputs.MonthlySavings + challengeSavings

	capital := inputs.CurrentCash
	if inputs.IncludeSavingsDeposit {
		capital += s.policy.SavingsDeposit
	}

	projection, err := Project(loan.DownPayment, capital, contribution, returnRate, s.policy.MaxYears)
	if err != nil {
		return domain.GoalPlan{}, err
	}

	plan := domain.GoalPlan{
		Loan:                loan,
		ChallengeSavings:    challengeSavings,
		MonthlyContribution: contribution,
		StartingCapital:     capital,
		AnnualReturnRate:    returnRate,
		Projection:          projection,
		OneYearProgress:     OneYearProgress(loan.DownPayment, capital, contribution),
	}

	// Sin ingreso el ratio no está definido; el plan se entrega sin riesgo
	if inputs.MonthlyIncome == 0 {
		s.logger.Debug("risk skipped: monthly income is zero")
		return plan, nil
	}

	risk, err := Evaluate(loan.MonthlyPayment, inputs.MonthlyIncome, s.policy.RiskThreshold)
	if err != nil {
		return domain.GoalPlan{}, err
	}
	plan.Risk = &risk

	return plan, nil
}
