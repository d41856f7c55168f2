package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yuribeats/the-boards/constants"
	boardshttp "github.com/yuribeats/the-boards/http"
	"github.com/yuribeats/the-boards/pending"
	"github.com/yuribeats/the-boards/secrets"
	"github.com/yuribeats/the-boards/telemetry"
	"github.com/yuribeats/the-boards/utils"
)

// newPendingCmd creates the 'pending' subcommand. It skips the admin
// password check; whoever runs it already holds the token.
func newPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   constants.CmdPending,
		Short: constants.DescPending,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			sp, err := secrets.NewSecretsProvider(ctx, &cfg.Secrets)
			if err != nil {
				return err
			}
			defer sp.Close()

			token, err := secrets.Lookup(ctx, sp, constants.EnvGitHubToken)
			if err != nil {
				return err
			}
			if token == "" {
				return errors.New(constants.EnvGitHubToken + " is not configured")
			}

			client, err := pending.NewClient(cfg.GitHub, telemetry.NewHTTPClient(time.Duration(cfg.HTTP.Timeout)))
			if err != nil {
				return err
			}
			payload, err := client.Fetch(ctx, token)
			if err != nil {
				return err
			}
			out, err := utils.MarshalJSONIndent(boardshttp.PendingResponse{Pending: payload})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
