package main

import (
	"autoOpsAI/pkg/database"
	"autoOpsAI/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the intelligence tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close(db) }()

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		logger.Info("migration complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
