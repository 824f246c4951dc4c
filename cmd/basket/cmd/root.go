package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbasket/internal/config"
	"github.com/katalvlaran/lvbasket/internal/logging"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	// cfg is loaded before every subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "basket",
	Short:         "Frequent itemsets and association rules for market baskets",
	Long:          "Clean transaction data, mine frequent itemsets with apriori or eclat, derive association rules and product recommendations.",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			c.Logging.Level = logLevel
		}
		if logFormat != "" {
			c.Logging.Format = logFormat
		}
		lc := logging.DefaultConfig()
		lc.Level, lc.Format = c.Logging.Level, c.Logging.Format
		lc.Output = cmd.ErrOrStderr()
		logging.Init(lc)
		cfg = c
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default basket.yaml, config.yaml or $BASKET_CONFIG)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "log format: console or json")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(preprocessCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(mineCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(serveCmd)
}
