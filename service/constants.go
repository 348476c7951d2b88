package service

import "home-goal/domain"

const (
	UnitScale         = 100_000_000 // 1억
	MaxRepaymentYears = 50          // 50 años
	MaxInterestRate   = 1.0         // 100% anual
	MaxHomePrice      = 10_000.0    // 1조 en unidades de 억
	MaxTermRangeYears = 40          // máximo rango de plazos a evaluar
	MinReturnRate     = -1.0        // una pérdida total es el peor caso

	DefaultLoanCeiling      = 1_000_000_000
	DefaultStressAdjustment = 0.015
	DefaultRiskThreshold    = 0.35
	DefaultMaxYears         = 50
	DefaultSavingsDeposit   = 50_000_000
	DefaultProduct          = "mmf"
)

// DefaultPolicy returns the policy values used when configuration leaves them unset.
func DefaultPolicy() domain.Policy {
	return domain.Policy{
		UnitScale:        UnitScale,
		LoanCeiling:      DefaultLoanCeiling,
		StressAdjustment: DefaultStressAdjustment,
		RiskThreshold:    DefaultRiskThreshold,
		MaxYears:         DefaultMaxYears,
		SavingsDeposit:   DefaultSavingsDeposit,
		InvestmentProducts: map[string]float64{
			"mmf":  0.0267,
			"fund": 0.05,
		},
		DefaultProduct: DefaultProduct,
		Challenges: domain.ChallengeCatalog{
			"coffee":       20_000,
			"taxi":         30_000,
			"subscription": 20_000,
			"dining":       25_000,
		},
		LTVPresets: map[string]float64{
			"first_home": 70,
			"multi_home": 40,
			"average":    60,
		},
	}
}
