package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

type globalFlags struct {
	profile string
	verbose bool
	json    bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "bnt",
		Short:         "Bonita CLI (bnt): launch processes and complete tasks on a Bonita engine",
		Long:          "bnt talks to a Bonita BPM engine over its REST API. It keeps connection profiles, launches process instances for business entities, completes their human tasks, and tracks entity-to-case mappings through the SYSTEM_RegisterProcess registry.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().StringVarP(&flags.profile, "profile", "p", app.defaultProfile, "Profile to use (env: BNT_PROFILE)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log engine requests to stderr")
	rootCmd.PersistentFlags().BoolVar(&flags.json, "json", false, "Print machine-readable JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if flags.verbose {
			app.logLevel.Set(slog.LevelDebug)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newProfileCmd(app, flags),
		newConnectCmd(app, flags),
		newLaunchCmd(app, flags),
		newCompleteCmd(app, flags),
		newCaseCmd(app, flags),
		newProcessCmd(app, flags),
		newHistoryCmd(app, flags),
	)

	return rootCmd
}
