package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"home-goal/config"
	"home-goal/logging"
)

var (
	flagConfig   string
	flagLogLevel string

	cfg    *config.Config
	logger logging.Logger = logging.NewNopLogger()
)

var rootCmd = &cobra.Command{
	Use:   "home-goal",
	Short: "Home purchase goal planner",
	Long:  "Project loan affordability and the years needed to save a home down payment.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagLogLevel != "" {
			loaded.Log.Level = flagLogLevel
		}

		l, err := logging.NewLogger(loaded.Log)
		if err != nil {
			return err
		}

		cfg = loaded
		logger = l
		return nil
	},
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to YAML config (HOMEGOAL_* env vars override)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Override log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd, planCmd, policyCmd)
}
