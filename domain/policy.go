package domain

// Policy carries the regulatory and product constants that the calculations
// depend on. It is loaded from configuration and passed into each operation.
type Policy struct {
	UnitScale          int64              `json:"unit_scale" mapstructure:"unit_scale"`
	LoanCeiling        int64              `json:"loan_ceiling" mapstructure:"loan_ceiling"`
	StressAdjustment   float64            `json:"stress_adjustment" mapstructure:"stress_adjustment"`
	RiskThreshold      float64            `json:"risk_threshold" mapstructure:"risk_threshold"`
	MaxYears           int                `json:"max_years" mapstructure:"max_years"`
	SavingsDeposit     int64              `json:"savings_deposit" mapstructure:"savings_deposit"`
	InvestmentProducts map[string]float64 `json:"investment_products" mapstructure:"investment_products"`
	DefaultProduct     string             `json:"default_product" mapstructure:"default_product"`
	Challenges         ChallengeCatalog   `json:"challenges" mapstructure:"challenges"`
	LTVPresets         map[string]float64 `json:"ltv_presets" mapstructure:"ltv_presets"`
}

// ReturnRate resolves the annual return rate for an investment product,
// falling back to the default product when product is empty.
func (p Policy) ReturnRate(product string) (float64, error) {
	if product == "" {
		product = p.DefaultProduct
	}
	rate, ok := p.InvestmentProducts[product]
	if !ok {
		return 0, NewInvalidInput("investment_product", "producto desconocido: "+product)
	}
	return rate, nil
}
