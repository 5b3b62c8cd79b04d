package cmd

import (
	"context"
	"fmt"
	"strings"

	reportadapter "github.com/bnema/gimme-omni/internal/adapters/render/report"
	"github.com/bnema/gimme-omni/internal/application"
	"github.com/bnema/gimme-omni/internal/domain"
	"github.com/spf13/cobra"
)

const fetchLabel = "Fetching TSOps data..."

type reportFlags struct {
	username     string
	noRank       bool
	excludeSelf  bool
	asJSON       bool
	snapshotPath string
	atCapture    bool
}

func newReportCmd(app *app) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"status"},
		Short:   "Show projected staleness for every eligible Omni case",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, app, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.username, "user", "u", "", "Agent username (default: agent.username from config)")
	cmd.Flags().BoolVar(&flags.noRank, "no-rank", false, "Skip the peer queue and position projection")
	cmd.Flags().BoolVar(&flags.excludeSelf, "exclude-self", false, "Leave yourself out of the peer queue")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Render JSON output")
	cmd.Flags().StringVar(&flags.snapshotPath, "snapshot", "", "Replay a snapshot file instead of querying TSOps")
	cmd.Flags().BoolVar(&flags.atCapture, "at-capture", false, "Evaluate a replayed snapshot at its capture time")
	// A snapshot already names the agent it was captured for.
	cmd.MarkFlagsMutuallyExclusive("user", "snapshot")

	return cmd
}

func runReport(cmd *cobra.Command, app *app, flags reportFlags) error {
	if flags.atCapture && flags.snapshotPath == "" {
		return fmt.Errorf("--at-capture requires --snapshot")
	}

	opts := application.ReportOptions{
		ProjectRank: app.cfg.Report.ProjectRank && !flags.noRank,
		ExcludeSelf: app.cfg.Report.ExcludeSelf || flags.excludeSelf,
		AtCapture:   flags.atCapture,
	}

	var snapshot domain.Snapshot
	if flags.snapshotPath != "" {
		repo, err := app.openSnapshot(flags.snapshotPath)
		if err != nil {
			return err
		}
		snapshot, err = repo.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
	} else {
		var err error
		snapshot, err = captureSnapshot(cmd, app, resolveUsername(app, flags.username), !flags.asJSON)
		if err != nil {
			return err
		}
	}

	report, err := app.reports.FromSnapshot(snapshot, opts)
	if err != nil {
		return err
	}

	if flags.asJSON {
		output, err := app.jsonRenderer(report)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	}

	output, err := app.reportRenderer(report, reportadapter.RenderOptions{
		Username: snapshot.Self.Username,
		Replayed: flags.snapshotPath != "",
	})
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}

func resolveUsername(app *app, flagValue string) string {
	if username := strings.TrimSpace(flagValue); username != "" {
		return username
	}

	return app.cfg.Agent.Username
}

func captureSnapshot(cmd *cobra.Command, app *app, username string, animate bool) (domain.Snapshot, error) {
	if username == "" {
		return domain.Snapshot{}, fmt.Errorf("%w: pass --user or set agent.username", application.ErrUsernameRequired)
	}

	capture := func(ctx context.Context) (domain.Snapshot, error) {
		return app.reports.Capture(ctx, username)
	}

	if !animate {
		return capture(cmd.Context())
	}

	return withSpinner(cmd.Context(), cmd.ErrOrStderr(), fetchLabel, capture)
}
