package main

import (
	"autoOpsAI/internal/bootstrap"
	"autoOpsAI/pkg/database"
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run one generation pass and print the insights",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close(db) }()

		svc, err := bootstrap.NewService(cfg, db, nil)
		if err != nil {
			return err
		}

		res, err := svc.Refresh(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, in := range res.Insights {
			fmt.Fprintf(out, "%-20s %3d%%  %10.2f  %s\n", in.Type, in.Confidence, in.BusinessImpact, in.Title)
		}
		fmt.Fprintf(out, "new actions: %d  health: %d\n", len(res.NewActions), res.Metrics.SystemHealth)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
