package domain

// LoanResult holds the loan figures derived from a GoalInputs snapshot.
// All amounts are whole currency units.
type LoanResult struct {
	HomePriceAbsolute int64   `json:"home_price_absolute"`
	MaxLoan           int64   `json:"max_loan"`
	DownPayment       int64   `json:"down_payment"`
	MonthlyPayment    int64   `json:"monthly_payment"`
	TotalPayment      int64   `json:"total_payment"`
	TotalInterest     int64   `json:"total_interest"`
	EffectiveRate     float64 `json:"effective_rate"`
	StressApplied     bool    `json:"stress_applied"`
}
