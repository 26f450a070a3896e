package main

import (
	"autoOpsAI/business/simulation"
	"autoOpsAI/internal/bootstrap"
	"autoOpsAI/pkg/database"
	"autoOpsAI/pkg/logger"
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Record simulated orders and refresh insights",
	Long: `Draw random purchases from the stored catalogue and record them through
the operations service, so every order updates stock, LTV and the
insight set.

Examples:
  # ten orders, reproducible
  simulate --steps 10 --seed 42

  # run on the configured interval until interrupted
  simulate --steps 0`,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.Int("steps", 10, "orders to record; 0 runs on the configured interval until interrupted")
	f.Int64("seed", 0, "random seed (0 uses SIMULATION_SEED)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	steps, _ := cmd.Flags().GetInt("steps")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = cfg.Simulation.Seed
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	svc, err := bootstrap.NewService(cfg, db, nil)
	if err != nil {
		return err
	}
	repos := bootstrap.Repositories(db)
	sim := simulation.NewSimulator(seed, repos.Customers, repos.Products, svc)

	if steps == 0 {
		scheduler := simulation.NewScheduler("order-simulator", cfg.Simulation.Interval, simulation.RealTicker)
		runs := scheduler.Run(ctx, func(ctx context.Context) error {
			_, err := sim.Step(ctx)
			return err
		})
		logger.Info("simulation stopped", "orders", runs)
		return nil
	}

	for i := 0; i < steps; i++ {
		order, err := sim.Step(ctx)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\tx%d\t%.2f\n",
			order.ID, order.CustomerID, order.ProductID, order.Quantity, order.Revenue)
	}

	m, err := svc.Metrics(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "health=%d pending=%d revenue=%.2f\n", m.SystemHealth, m.PendingActions, m.TotalRevenue)
	return nil
}
