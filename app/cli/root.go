package main

import (
	"autoOpsAI/pkg/config"
	"autoOpsAI/pkg/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "autoops",
	Short: "Operate the AutoOps intelligence engine",
	Long:  "Migrates and seeds the store, drives the order simulator, scores leads and mints operator tokens.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		logger.Init(cfg.App.Environment)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
