package main

import (
	"autoOpsAI/business/intelligence"
	"autoOpsAI/domain"
	"autoOpsAI/pkg/logger"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Value a sales lead offline",
	Long: `Value a lead with the default engine policy. No database is needed.

Examples:
  score --deal-size 10000 --company-size 1000 --intent 2 --budget 12000 --recency 0.5`,
	// Scoring is offline, so skip the root hook that requires database
	// credentials.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init("development")
		return nil
	},
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.String("id", "", "lead id echoed in the output")
	f.Float64("deal-size", 0, "expected deal size")
	f.Float64("company-size", 0, "company size in employees")
	f.Int("intent", 0, "number of intent signals")
	f.Float64("budget", 0, "stated budget")
	f.Float64("recency", 0, "recency score in [0, 1]")
	f.String("currency", "", "currency symbol for the reasoning lines")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	id, _ := f.GetString("id")
	dealSize, _ := f.GetFloat64("deal-size")
	companySize, _ := f.GetFloat64("company-size")
	intent, _ := f.GetInt("intent")
	budget, _ := f.GetFloat64("budget")
	recency, _ := f.GetFloat64("recency")
	currency, _ := f.GetString("currency")

	if dealSize < 0 || companySize < 0 || intent < 0 || budget < 0 {
		return fmt.Errorf("lead fields must not be negative: %w", domain.ErrInvalidInput)
	}
	if recency < 0 || recency > 1 {
		return fmt.Errorf("recency must be in [0, 1]: %w", domain.ErrInvalidInput)
	}

	engineCfg := intelligence.DefaultConfig()
	if currency != "" {
		engineCfg.CurrencySymbol = currency
	}

	valuation := intelligence.ValueLead(engineCfg, domain.Lead{
		ID:            id,
		DealSize:      dealSize,
		CompanySize:   companySize,
		IntentSignals: intent,
		BudgetRange:   budget,
		RecencyScore:  recency,
	})

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(valuation)
}
