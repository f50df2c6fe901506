package main

import (
	"errors"
	"fmt"
	"time"

	"uniformnavi/internal/utils"

	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

// tokenCmd issues admin tokens; there is no login endpoint.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed admin API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET is not set")
		}
		token, err := utils.GenerateToken(cfg.JWTSecret, tokenSubject, "admin", tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
