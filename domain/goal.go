package domain

// GoalInputs is the snapshot of a buyer's goal used for a single computation.
// HomePrice is expressed in units of Policy.UnitScale (100,000,000 by default).
type GoalInputs struct {
	HomePrice          float64 `json:"home_price"`
	LTVPercent         float64 `json:"ltv_percent"`
	InterestRateAnnual float64 `json:"interest_rate_annual"`
	RepaymentYears     int     `json:"repayment_years"`
	MonthlyIncome      int64   `json:"monthly_income"`
	CurrentCash        int64   `json:"current_cash"`
	MonthlySavings     int64   `json:"monthly_savings"`

	// Suma el depósito de ahorro/suscripción al capital inicial
	IncludeSavingsDeposit bool   `json:"include_savings_deposit,omitempty"`
	InvestmentProduct     string `json:"investment_product,omitempty"`
}

// ChallengeCatalog maps a challenge identifier to its monthly saving amount.
type ChallengeCatalog map[string]int64

// ChallengeSelections is the set of challenge identifiers chosen by the buyer.
type ChallengeSelections []string

type ProjectionResult struct {
	AchievementYears int   `json:"achievement_years"`
	Reached          bool  `json:"reached"`
	FinalCapital     int64 `json:"final_capital"`
}

type RiskAssessment struct {
	PaymentToIncomeRatio float64 `json:"payment_to_income_ratio"`
	OverThreshold        bool    `json:"over_threshold"`
	Threshold            float64 `json:"threshold"`
}

// GoalPlan bundles every figure derived from one GoalInputs snapshot.
type GoalPlan struct {
	Loan                LoanResult       `json:"loan"`
	ChallengeSavings    int64            `json:"challenge_savings"`
	MonthlyContribution int64            `json:"monthly_contribution"`
	StartingCapital     int64            `json:"starting_capital"`
	AnnualReturnRate    float64          `json:"annual_return_rate"`
	Projection          ProjectionResult `json:"projection"`
	OneYearProgress     float64          `json:"one_year_progress"`
	Risk                *RiskAssessment  `json:"risk,omitempty"`
}
