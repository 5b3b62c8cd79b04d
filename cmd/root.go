package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var opts wireOptions
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "omni",
		Short:         "gimme-omni (omni): project staleness for queued Omni cases",
		Long:          "omni fetches your agent record, the open case queue and the peer list from TSOps, then shows how much each eligible Omni case would reduce your staleness and where it would put you in the dispatch queue.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] == "true" {
				return nil
			}

			wired, err := wireApp(opts)
			if err != nil {
				return err
			}
			*app = *wired

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $HOME/.gimme-omni/config.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace|debug|info|warn|error)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newReportCmd(app),
		newSnapshotCmd(app),
		newAuthCmd(app),
	)

	return rootCmd
}

const skipWireAnnotation = "omni/skip-wire"
