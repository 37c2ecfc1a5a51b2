package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/connector-sync/internal/config"
	"github.com/MKhiriev/connector-sync/internal/utils"
)

// newTokenCmd issues bearer tokens for the REST API. The sign key and issuer
// come from APP_TOKEN_SIGN_KEY and APP_TOKEN_ISSUER unless given as flags.
func newTokenCmd() *cobra.Command {
	var (
		subject, signKey, issuer string
		ttl                      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var app config.App
			if err := env.ParseWithOptions(&app, env.Options{Prefix: "APP_"}); err != nil {
				return fmt.Errorf("error parsing env: %w", err)
			}
			if signKey != "" {
				app.TokenSignKey = signKey
			}
			if issuer != "" {
				app.TokenIssuer = issuer
			}

			token, err := utils.GenerateJWTToken(app.TokenIssuer, subject, ttl, app.TokenSignKey)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&subject, "subject", "", "Operator the token is issued for")
	flags.DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	flags.StringVar(&signKey, "sign-key", "", "Token signing key")
	flags.StringVar(&issuer, "issuer", "", "Token issuer")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
