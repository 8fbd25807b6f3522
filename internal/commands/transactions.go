package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newExpenseCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and review expenses",
	}
	cmd.AddCommand(
		newExpenseAddCommand(a),
		newExpenseListCommand(a),
	)
	return cmd
}

func newExpenseAddCommand(a *app) *cobra.Command {
	var (
		date      string
		reference string
	)

	cmd := &cobra.Command{
		Use:   "add <expense-account-id> <amount> <description>",
		Short: "Record an expense against an expense account",
		Long: "Records a double-entry expense posting: the chosen expense account\n" +
			"is debited and the first asset account is credited as the funding source.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			accountID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad account id %q", args[0])
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("bad amount %q: %w", args[1], err)
			}
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			tx, err := a.ledger.AddExpense(cmd.Context(), date, args[2], accountID, amount, reference)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded expense %d: %s %s on %s\n",
				tx.ID, tx.Amount.StringFixed(2), tx.Description, tx.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "posting date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&reference, "ref", "", "reference (check number, receipt id)")
	return cmd
}

func newExpenseListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			expenses, err := a.store.ExpenseTransactions(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-5s %-12s %-24s %-20s %12s\n", "ID", "DATE", "DESCRIPTION", "ACCOUNT", "AMOUNT")
			for _, e := range expenses {
				fmt.Fprintf(w, "%-5d %-12s %-24s %-20s %12s\n",
					e.ID, e.Date, e.Description, e.AccountName, e.Amount.StringFixed(2))
			}
			return nil
		},
	}
}

func newTxCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Review the full transaction journal",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all transactions, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			txns, err := a.store.Transactions(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-5s %-12s %-9s %-24s %6s %6s %12s\n",
				"ID", "DATE", "TYPE", "DESCRIPTION", "DEBIT", "CREDIT", "AMOUNT")
			for _, t := range txns {
				fmt.Fprintf(w, "%-5d %-12s %-9s %-24s %6d %6d %12s\n",
					t.ID, t.Date, t.Type, t.Description,
					t.DebitAccountID, t.CreditAccountID, t.Amount.StringFixed(2))
			}
			return nil
		},
	})
	return cmd
}

func newSummaryCommand(a *app) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Income vs. expenses for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			if month == "" {
				month = time.Now().Format("2006-01")
			}
			if _, err := time.Parse("2006-01", month); err != nil {
				return fmt.Errorf("bad month %q, want YYYY-MM", month)
			}

			summary, err := a.ledger.MonthlySummary(cmd.Context(), month)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s\n", summary.Month)
			fmt.Fprintf(w, "  income:   %12s\n", summary.Income.StringFixed(2))
			fmt.Fprintf(w, "  expenses: %12s\n", summary.Expenses.StringFixed(2))
			fmt.Fprintf(w, "  net:      %12s\n", summary.Net().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month YYYY-MM (default: current month)")
	return cmd
}
