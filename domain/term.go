package domain

type TermRecommendationInput struct {
	Goal          GoalInputs `json:"goal"`
	MinYears      int        `json:"min_years"`
	MaxYears      int        `json:"max_years"`
	StressApplied bool       `json:"stress_applied"`
}

type TermOption struct {
	RepaymentYears       int     `json:"repayment_years"`
	MonthlyPayment       int64   `json:"monthly_payment"`
	TotalInterest        int64   `json:"total_interest"`
	PaymentToIncomeRatio float64 `json:"payment_to_income_ratio"`
	OverThreshold        bool    `json:"over_threshold"`
}

type TermRecommendationResult struct {
	// 0 cuando ningún plazo queda bajo el umbral
	RecommendedYears int          `json:"recommended_years"`
	Options          []TermOption `json:"options"`
}
