package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ircportal/internal/config"
	"ircportal/internal/domain"
	"ircportal/internal/infrastructure/identity"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the built-in demo accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		provider, err := newProvider(cfg)
		if err != nil {
			return err
		}
		static, ok := provider.(*identity.StaticProvider)
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Accounts are managed by %s\n", cfg.IdentityURL)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "EMAIL\tNAME\tROLES")
		for _, acc := range static.Accounts() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", acc.Email, acc.FullName, strings.Join(acc.Roles, ","))
		}
		return w.Flush()
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and keep the session for later commands",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		user, err := a.identity.Login(cmd.Context(), args[0], password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				return errors.New(a.translator.T(a.cfg.Locale, "error.invalid_credentials", nil))
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Name, describeRole(user.Role, user.Portfolio))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()
		return a.identity.Logout(cmd.Context())
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in member",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.identity.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}
		if user == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> %s\n", user.Name, user.Email, describeRole(user.Role, user.Portfolio))
		return nil
	},
}

func describeRole(role domain.Role, p domain.Portfolio) string {
	if p == "" {
		return string(role)
	}
	return string(role) + ", " + string(p)
}

func init() {
	loginCmd.Flags().StringP("password", "p", os.Getenv("PORTAL_PASSWORD"), "password (prompted when empty)")
}
