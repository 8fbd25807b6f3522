package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/famledger/famledger/internal/models"
)

func newAccountsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the chart of accounts",
	}
	cmd.AddCommand(
		newAccountsListCommand(a),
		newAccountsAddCommand(a),
		newAccountsRmCommand(a),
	)
	return cmd
}

func newAccountsListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts, grouped by type",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			accounts, err := a.store.Accounts(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-5s %-10s %-28s %12s  %s\n", "ID", "TYPE", "NAME", "BALANCE", "DESCRIPTION")
			for _, acct := range accounts {
				fmt.Fprintf(w, "%-5d %-10s %-28s %12s  %s\n",
					acct.ID, acct.Type, acct.Name, acct.Balance.StringFixed(2), acct.Description)
			}
			return nil
		},
	}
}

func newAccountsAddCommand(a *app) *cobra.Command {
	var accountType string
	var description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			t := models.AccountType(accountType)
			if !t.Valid() {
				return fmt.Errorf("unknown account type %q (asset, liability, equity, income, expense)", accountType)
			}
			acct := &models.Account{Name: args[0], Type: t, Description: description}
			if err := a.store.CreateAccount(cmd.Context(), acct); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created account %d: %s (%s)\n", acct.ID, acct.Name, acct.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "expense", "account type")
	cmd.Flags().StringVar(&description, "description", "", "account description")
	return cmd
}

func newAccountsRmCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an account (transactions referencing it are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad account id %q", args[0])
			}
			return a.store.DeleteAccount(cmd.Context(), id)
		},
	}
}

func newBalancesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show balances derived from posted transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			balances, err := a.ledger.DerivedBalances(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-5s %-10s %-28s %12s %12s\n", "ID", "TYPE", "NAME", "STORED", "DERIVED")
			for _, b := range balances {
				fmt.Fprintf(w, "%-5d %-10s %-28s %12s %12s\n",
					b.Account.ID, b.Account.Type, b.Account.Name,
					b.Account.Balance.StringFixed(2), b.Derived.StringFixed(2))
			}
			return nil
		},
	}
}
