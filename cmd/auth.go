package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the TSOps API token",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var secretValue string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the TSOps API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.SetToken(cmd.Context(), secretValue); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Token stored under %s\n", app.cfg.Auth.SecretRef)
			return err
		},
	}

	cmd.Flags().StringVar(&secretValue, "secret-value", "", "API token")
	_ = cmd.MarkFlagRequired("secret-value")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the stored TSOps API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.RemoveToken(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Token removed from %s\n", app.cfg.Auth.SecretRef)
			return err
		},
	}
}
