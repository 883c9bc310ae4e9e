package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/bonita-cli/internal/application"
	"github.com/bnema/bonita-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage engine connection profiles",
	}

	cmd.AddCommand(
		newProfileSetCmd(app, flags),
		newProfileListCmd(app, flags),
		newProfileRemoveCmd(app, flags),
	)

	return cmd
}

func newProfileSetCmd(app *app, flags *globalFlags) *cobra.Command {
	var (
		baseURL       string
		username      string
		password      string
		passwordStdin bool
		required      []string
	)

	cmd := &cobra.Command{
		Use:   "set [profile]",
		Short: "Create or update a profile",
		Long:  "Create or update a profile. Omitted flags keep their stored values. The password goes to the secret store, never to the profiles file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := profileFromArgs(flags, args)

			if passwordStdin {
				value, err := readPassword(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = value
			}

			command := application.SetProfileCommand{
				ID:       id,
				BaseURL:  baseURL,
				Username: username,
				Password: password,
			}
			if cmd.Flags().Changed("require") {
				command.RequiredProcesses = append([]string{}, required...)
			}

			profile, err := app.profiles.SetProfile(cmd.Context(), command)
			if err != nil {
				return err
			}

			if flags.json {
				return writeJSON(cmd, profile)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "profile %s saved\n", profile.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "", "Engine base URL, e.g. http://localhost:8080/bonita")
	cmd.Flags().StringVar(&username, "user", "", "Engine username")
	cmd.Flags().StringVar(&password, "password", "", "Engine password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	cmd.Flags().StringSliceVar(&required, "require", nil, "Processes that must be deployed on connect (repeat or comma-separate)")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}

func newProfileListCmd(app *app, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.profiles.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}

			if flags.json {
				return writeJSON(cmd, profiles)
			}

			return writeRendered(cmd, func() (string, error) {
				return app.renderer.profiles(profiles, domain.ProfileID(flags.profile))
			})
		},
	}
}

func newProfileRemoveCmd(app *app, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [profile]",
		Short: "Remove a profile and its stored password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := profileFromArgs(flags, args)
			if err := app.profiles.RemoveProfile(cmd.Context(), id); err != nil {
				if errors.Is(err, domain.ErrProfileNotFound) {
					return fmt.Errorf("profile %s does not exist: %w", id, err)
				}
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "profile %s removed\n", id)
			return err
		},
	}
}

func profileFromArgs(flags *globalFlags, args []string) domain.ProfileID {
	if len(args) > 0 {
		return domain.ProfileID(args[0])
	}
	return domain.ProfileID(flags.profile)
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("read password from stdin: empty password")
	}

	return password, nil
}
