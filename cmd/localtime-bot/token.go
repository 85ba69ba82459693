package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidar/localtime-bot/internal/config"
	"github.com/aidar/localtime-bot/internal/service"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the /api endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadJWT()
			if err != nil {
				return err
			}
			if !cfg.Enabled() {
				return fmt.Errorf("JWT_SECRET is not set")
			}

			token, err := service.NewAuthService(cfg.Secret).IssueToken(subject, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
