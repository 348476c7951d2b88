package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"home-goal/cli"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Show the active policy constants",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		p := cfg.Policy

		if flagPolicyJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		fmt.Fprintf(out, "Loan ceiling      %s\n", cli.FormatWon(p.LoanCeiling))
		fmt.Fprintf(out, "Stress buffer     +%s\n", cli.FormatPercent(p.StressAdjustment))
		fmt.Fprintf(out, "Risk threshold    %s of income\n", cli.FormatPercent(p.RiskThreshold))
		fmt.Fprintf(out, "Max horizon       %d years\n", p.MaxYears)
		fmt.Fprintf(out, "Savings deposit   %s\n", cli.FormatWon(p.SavingsDeposit))

		fmt.Fprintln(out, "\nInvestment products")
		for _, id := range sortedKeys(p.InvestmentProducts) {
			marker := ""
			if id == p.DefaultProduct {
				marker = " (default)"
			}
			fmt.Fprintf(out, "  %-14s %s%s\n", id, cli.FormatPercent(p.InvestmentProducts[id]), marker)
		}

		fmt.Fprintln(out, "\nSaving challenges")
		for _, id := range sortedKeys(p.Challenges) {
			fmt.Fprintf(out, "  %-14s %s/month\n", id, cli.FormatWon(p.Challenges[id]))
		}

		fmt.Fprintln(out, "\nLTV presets")
		for _, id := range sortedKeys(p.LTVPresets) {
			fmt.Fprintf(out, "  %-14s %.0f%%\n", id, p.LTVPresets[id])
		}
		return nil
	},
}

var flagPolicyJSON bool

func init() {
	policyCmd.Flags().BoolVar(&flagPolicyJSON, "json", false, "Print the policy as JSON")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
