package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// readLine prompts on stdout and reads one line from the command's stdin,
// so tests can drive it.
func readLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLoginCommand(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if username == "" {
				if username, err = readLine(cmd, "username: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = readLine(cmd, "password: "); err != nil {
					return err
				}
			}

			user, err := a.auth.Login(username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted if omitted)")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session (registry and settings are kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.auth.CurrentUser()
			if user == nil {
				return errNotLoggedIn
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", user.Username, user.Role)
			if user.Profile.Name != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  name:  %s\n", user.Profile.Name)
			}
			if user.Profile.Email != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  email: %s\n", user.Profile.Email)
			}
			if user.LastLogin != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  last login: %s\n", user.LastLogin)
			}
			return nil
		},
	}
}

func newPasswdCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the current user's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			current, err := readLine(cmd, "current password: ")
			if err != nil {
				return err
			}
			next, err := readLine(cmd, "new password: ")
			if err != nil {
				return err
			}
			if err := a.auth.ChangePassword(current, next); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "password changed")
			return nil
		},
	}
}
