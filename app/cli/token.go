package main

import (
	"autoOpsAI/internal/middleware"
	"autoOpsAI/pkg/utils"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an operator bearer token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		user, _ := cmd.Flags().GetString("user")
		role, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		role = strings.ToUpper(role)
		if role != middleware.RoleAdmin && role != middleware.RoleOperator {
			return fmt.Errorf("role must be %s or %s", middleware.RoleAdmin, middleware.RoleOperator)
		}

		token, err := utils.GenerateJWT(cfg.JWT.SecretKey, user, role, ttl)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	f := tokenCmd.Flags()
	f.String("user", "operator", "operator id stored in the token")
	f.String("role", middleware.RoleOperator, "ADMIN or OPERATOR")
	f.Duration("ttl", 24*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
