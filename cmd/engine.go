package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/bonita-cli/bonita"
	statusadapter "github.com/bnema/bonita-cli/internal/adapters/render/status"
	"github.com/bnema/bonita-cli/internal/application"
	"github.com/bnema/bonita-cli/internal/domain"
	"github.com/spf13/cobra"
)

const historyFadeAfter = 7 * 24 * time.Hour

func newConnectCmd(app *app, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Log in and check the registry and required processes are deployed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var report application.ConnectionReport
			err := app.run(cmd, flags, "Connecting...", func(ctx context.Context) error {
				var err error
				report, err = app.workflow.Connect(ctx, domain.ProfileID(flags.profile), app.override)
				return err
			})
			if err != nil {
				return err
			}

			if flags.json {
				return writeJSON(cmd, report)
			}

			return writeRendered(cmd, func() (string, error) {
				return app.renderer.connection(report)
			})
		},
	}
}

func newLaunchCmd(app *app, flags *globalFlags) *cobra.Command {
	params := &paramsFlags{}
	cmd := &cobra.Command{
		Use:   "launch <process> <entity-id>",
		Short: "Start a process instance for an entity and register its case",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			contract, err := params.load()
			if err != nil {
				return err
			}

			var record domain.LaunchRecord
			err = app.run(cmd, flags, fmt.Sprintf("Launching %s...", args[0]), func(ctx context.Context) error {
				var err error
				record, err = app.workflow.Launch(ctx, application.LaunchCommand{
					Profile:     domain.ProfileID(flags.profile),
					Override:    app.override,
					ProcessName: args[0],
					EntityID:    args[1],
					Params:      contract,
				})
				return err
			})
			if err != nil {
				return err
			}

			return writeRecord(cmd, flags, record)
		},
	}
	params.register(cmd)

	return cmd
}

func newCompleteCmd(app *app, flags *globalFlags) *cobra.Command {
	params := &paramsFlags{}
	cmd := &cobra.Command{
		Use:   "complete <process> <entity-id> <task>",
		Short: "Complete a human task in the case registered for an entity",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			contract, err := params.load()
			if err != nil {
				return err
			}

			var record domain.LaunchRecord
			err = app.run(cmd, flags, fmt.Sprintf("Completing %s...", args[2]), func(ctx context.Context) error {
				var err error
				record, err = app.workflow.Complete(ctx, application.CompleteCommand{
					Profile:     domain.ProfileID(flags.profile),
					Override:    app.override,
					ProcessName: args[0],
					EntityID:    args[1],
					TaskName:    args[2],
					Params:      contract,
				})
				return err
			})
			if err != nil {
				return err
			}

			return writeRecord(cmd, flags, record)
		},
	}
	params.register(cmd)

	return cmd
}

func newCaseCmd(app *app, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case",
		Short: "Inspect the entity-to-case registry",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <process> <entity-id>",
		Short: "Print the case id registered for an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var caseID string
			err := app.run(cmd, flags, "Looking up case...", func(ctx context.Context) error {
				var err error
				caseID, err = app.workflow.LookupCase(ctx, domain.ProfileID(flags.profile), app.override, args[0], args[1])
				return err
			})
			if err != nil {
				return err
			}

			if flags.json {
				return writeJSON(cmd, map[string]string{
					"processName": args[0],
					"entityId":    args[1],
					"caseId":      caseID,
				})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), caseID)
			return err
		},
	})

	return cmd
}

func newProcessCmd(app *app, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Query deployed process definitions",
	}

	var version string
	find := &cobra.Command{
		Use:   "find <name>",
		Short: "Print the id of a deployed process definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var lookup application.ProcessLookup
			err := app.run(cmd, flags, fmt.Sprintf("Looking up %s...", args[0]), func(ctx context.Context) error {
				var err error
				lookup, err = app.workflow.FindProcess(ctx, domain.ProfileID(flags.profile), app.override, args[0], version)
				return err
			})
			if err != nil {
				return err
			}

			if flags.json {
				return writeJSON(cmd, lookup)
			}
			if !lookup.Found {
				return &bonita.DeploymentError{Process: lookup.Name, Version: lookup.Version}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), lookup.ID)
			return err
		},
	}
	find.Flags().StringVar(&version, "version", "", "Process version (any version when empty)")
	cmd.AddCommand(find)

	return cmd
}

func newHistoryCmd(app *app, flags *globalFlags) *cobra.Command {
	var processName string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show cases launched and tasks completed from this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.workflow.History(cmd.Context(), processName)
			if err != nil {
				return err
			}

			if flags.json {
				return writeJSON(cmd, records)
			}

			return writeRendered(cmd, func() (string, error) {
				return app.renderer.history(records, statusadapter.RenderOptions{
					Now:       app.now(),
					FadeAfter: historyFadeAfter,
				})
			})
		},
	}
	cmd.Flags().StringVar(&processName, "process", "", "Only show records for this process")

	return cmd
}

func writeRecord(cmd *cobra.Command, flags *globalFlags, record domain.LaunchRecord) error {
	if flags.json {
		return writeJSON(cmd, record)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), record.CaseID)
	return err
}

// run executes an engine call behind a spinner on stderr. JSON and verbose
// output skip the spinner so stderr stays parseable.
func (a *app) run(cmd *cobra.Command, flags *globalFlags, label string, call func(context.Context) error) error {
	if flags.json || flags.verbose {
		return call(cmd.Context())
	}

	return runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, call)
}
