package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"home-goal/domain"
)

// Scenario is the TOML form of a plan request:
//
//	stress_applied = true
//	selections = ["coffee", "taxi"]
//
//	[goal]
//	home_price = 6
//	ltv_percent = 80
//	interest_rate_annual = 0.039
//	repayment_years = 30
type Scenario struct {
	StressApplied bool         `toml:"stress_applied"`
	Selections    []string     `toml:"selections"`
	Goal          ScenarioGoal `toml:"goal"`
}

type ScenarioGoal struct {
	HomePrice             float64 `toml:"home_price"`
	LTVPercent            float64 `toml:"ltv_percent"`
	InterestRateAnnual    float64 `toml:"interest_rate_annual"`
	RepaymentYears        int     `toml:"repayment_years"`
	MonthlyIncome         int64   `toml:"monthly_income"`
	CurrentCash           int64   `toml:"current_cash"`
	MonthlySavings        int64   `toml:"monthly_savings"`
	IncludeSavingsDeposit bool    `toml:"include_savings_deposit"`
	InvestmentProduct     string  `toml:"investment_product"`
}

// LoadScenario decodes a TOML scenario file, rejecting unknown keys.
func LoadScenario(path string) (Scenario, error) {
	var s Scenario
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Scenario{}, fmt.Errorf("scenario %s: unknown key %q", path, undecoded[0].String())
	}
	return s, nil
}

func (g ScenarioGoal) Inputs() domain.GoalInputs {
	return domain.GoalInputs{
		HomePrice:             g.HomePrice,
		LTVPercent:            g.LTVPercent,
		InterestRateAnnual:    g.InterestRateAnnual,
		RepaymentYears:        g.RepaymentYears,
		MonthlyIncome:         g.MonthlyIncome,
		CurrentCash:           g.CurrentCash,
		MonthlySavings:        g.MonthlySavings,
		IncludeSavingsDeposit: g.IncludeSavingsDeposit,
		InvestmentProduct:     g.InvestmentProduct,
	}
}
