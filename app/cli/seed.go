package main

import (
	"autoOpsAI/business/simulation"
	"autoOpsAI/internal/repository/postgres"
	"autoOpsAI/pkg/database"
	"autoOpsAI/pkg/logger"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo catalogue",
	Long: `Insert the demo customers, products, orders and workflows. Dates are
relative to now. Rows that already exist are left alone.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().Bool("migrate", true, "run migrations before seeding")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	db, err := database.InitPostgres(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if doMigrate, _ := cmd.Flags().GetBool("migrate"); doMigrate {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	cat := simulation.MockCatalogue(time.Now().UTC())
	if err := postgres.NewSeedRepository(db).Seed(cmd.Context(), cat.Customers, cat.Products, cat.Orders, cat.Workflows); err != nil {
		return err
	}

	logger.Info("seed complete",
		"customers", len(cat.Customers),
		"products", len(cat.Products),
		"orders", len(cat.Orders),
		"workflows", len(cat.Workflows),
	)
	return nil
}
