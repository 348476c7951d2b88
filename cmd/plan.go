package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"home-goal/cli"
	"home-goal/domain"
	"home-goal/service"
)

var (
	flagScenario string
	flagJSON     bool
	flagStress   bool
	flagSelect   []string
	flagGoal     = ScenarioGoal{
		HomePrice:          6,
		LTVPercent:         80,
		InterestRateAnnual: 0.039,
		RepaymentYears:     30,
		MonthlyIncome:      4_000_000,
		CurrentCash:        10_000_000,
		MonthlySavings:     500_000,
	}
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Project loan, savings horizon and payment risk for a goal",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVarP(&flagScenario, "scenario", "s", "", "TOML scenario file; explicit flags override its values")
	f.BoolVar(&flagJSON, "json", false, "Print the raw plan as JSON")
	f.BoolVar(&flagStress, "stress", false, "Apply the stress DSR rate buffer")
	f.StringSliceVar(&flagSelect, "challenge", nil, "Saving challenge to include (repeatable)")

	f.Float64Var(&flagGoal.HomePrice, "home-price", flagGoal.HomePrice, "Home price in 억 (100,000,000 units)")
	f.Float64Var(&flagGoal.LTVPercent, "ltv", flagGoal.LTVPercent, "Loan-to-value percent (0-100)")
	f.Float64Var(&flagGoal.InterestRateAnnual, "rate", flagGoal.InterestRateAnnual, "Annual interest rate as a fraction")
	f.IntVar(&flagGoal.RepaymentYears, "years", flagGoal.RepaymentYears, "Repayment term in years")
	f.Int64Var(&flagGoal.MonthlyIncome, "income", flagGoal.MonthlyIncome, "Monthly income")
	f.Int64Var(&flagGoal.CurrentCash, "cash", flagGoal.CurrentCash, "Cash available now")
	f.Int64Var(&flagGoal.MonthlySavings, "savings", flagGoal.MonthlySavings, "Base monthly savings")
	f.BoolVar(&flagGoal.IncludeSavingsDeposit, "include-deposit", false, "Add the savings/subscription deposit to starting capital")
	f.StringVar(&flagGoal.InvestmentProduct, "product", "", "Investment product for the return rate (default from policy)")
}

func runPlan(cmd *cobra.Command, _ []string) error {
	scenario, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	loanService := service.NewLoanService(cfg.Policy, logger.Named("loan"))
	planService := service.NewPlanService(loanService, cfg.Policy, logger.Named("plan"))

	plan, err := planService.Plan(scenario.Goal.Inputs(), service.PlanOptions{
		StressApplied: scenario.StressApplied,
		Selections:    scenario.Selections,
	})
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	renderPlan(out, plan)
	return nil
}

// resolveScenario starts from the scenario file (or flag defaults) and
// applies any flag the user set explicitly.
func resolveScenario(cmd *cobra.Command) (Scenario, error) {
	s := Scenario{Goal: flagGoal, StressApplied: flagStress, Selections: flagSelect}
	if flagScenario == "" {
		return s, nil
	}

	loaded, err := LoadScenario(flagScenario)
	if err != nil {
		return Scenario{}, err
	}

	f := cmd.Flags()
	override := map[string]func(){
		"home-price":      func() { loaded.Goal.HomePrice = flagGoal.HomePrice },
		"ltv":             func() { loaded.Goal.LTVPercent = flagGoal.LTVPercent },
		"rate":            func() { loaded.Goal.InterestRateAnnual = flagGoal.InterestRateAnnual },
		"years":           func() { loaded.Goal.RepaymentYears = flagGoal.RepaymentYears },
		"income":          func() { loaded.Goal.MonthlyIncome = flagGoal.MonthlyIncome },
		"cash":            func() { loaded.Goal.CurrentCash = flagGoal.CurrentCash },
		"savings":         func() { loaded.Goal.MonthlySavings = flagGoal.MonthlySavings },
		"include-deposit": func() { loaded.Goal.IncludeSavingsDeposit = flagGoal.IncludeSavingsDeposit },
		"product":         func() { loaded.Goal.InvestmentProduct = flagGoal.InvestmentProduct },
		"stress":          func() { loaded.StressApplied = flagStress },
		"challenge":       func() { loaded.Selections = flagSelect },
	}
	for name, apply := range override {
		if f.Changed(name) {
			apply()
		}
	}
	return loaded, nil
}

func renderPlan(w io.Writer, plan domain.GoalPlan) {
	loan := plan.Loan
	stress := ""
	if loan.StressApplied {
		stress = " (스트레스)"
	}

	fmt.Fprintf(w, "\n  Home price        %s\n", cli.FormatEok(loan.HomePriceAbsolute))
	fmt.Fprintf(w, "  Max loan          %s\n", cli.FormatWon(loan.MaxLoan))
	fmt.Fprintf(w, "  Down payment      %s\n", cli.FormatWon(loan.DownPayment))
	fmt.Fprintf(w, "  Monthly payment   %s%s @ %s\n", cli.FormatWon(loan.MonthlyPayment), stress, cli.FormatPercent(loan.EffectiveRate))
	fmt.Fprintf(w, "  Total interest    %s\n\n", cli.FormatWon(loan.TotalInterest))

	fmt.Fprintf(w, "  Monthly saving    %s (challenges %s)\n", cli.FormatWon(plan.MonthlyContribution), cli.FormatWon(plan.ChallengeSavings))
	fmt.Fprintf(w, "  Starting capital  %s\n", cli.FormatWon(plan.StartingCapital))
	fmt.Fprintf(w, "  Return rate       %s\n", cli.FormatPercent(plan.AnnualReturnRate))
	fmt.Fprintf(w, "  Down payment in   %s (target %s)\n",
		cli.FormatYears(plan.Projection.AchievementYears, plan.Projection.Reached),
		cli.FormatEok(loan.DownPayment),
	)
	fmt.Fprintf(w, "  1-year progress   %s %s\n\n", cli.ProgressBar(plan.OneYearProgress, 20), cli.FormatPercent(plan.OneYearProgress))

	if plan.Risk == nil {
		fmt.Fprintf(w, "  Risk              n/a (no income)\n")
		return
	}
	verdict := "ok"
	if plan.Risk.OverThreshold {
		verdict = "over threshold, consider a lower price or longer term"
	}
	fmt.Fprintf(w, "  Payment / income  %s of %s max, %s\n",
		cli.FormatPercent(plan.Risk.PaymentToIncomeRatio),
		cli.FormatPercent(plan.Risk.Threshold),
		verdict,
	)
}
