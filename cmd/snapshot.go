package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSnapshotCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture TSOps data for offline reports",
	}

	cmd.AddCommand(newSnapshotSaveCmd(app))

	return cmd
}

func newSnapshotSaveCmd(app *app) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Fetch the agent, case and peer payloads and write them to a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := app.openSnapshot(args[0])
			if err != nil {
				return err
			}

			snapshot, err := captureSnapshot(cmd, app, resolveUsername(app, username), true)
			if err != nil {
				return err
			}

			if err := repo.Save(cmd.Context(), snapshot); err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Snapshot saved to %s (%d cases, %d peers)\n", args[0], len(snapshot.Cases), len(snapshot.Peers))
			return err
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "Agent username (default: agent.username from config)")

	return cmd
}
