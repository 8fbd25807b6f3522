package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/famledger/famledger/internal/models"
)

func newCustomersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"members"},
		Short:   "Manage family members and other customers",
	}
	cmd.AddCommand(
		newCustomersListCommand(a),
		newCustomersAddCommand(a),
		newCustomersRmCommand(a),
	)
	return cmd
}

func newCustomersListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List customers with projected monthly income",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			customers, err := a.store.Customers(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-5s %-24s %-20s %-6s %12s %12s\n",
				"ID", "NAME", "JOB", "FAMILY", "WEEKLY", "MONTHLY")
			for _, c := range customers {
				family := ""
				if c.IsFamilyMember {
					family = "yes"
				}
				fmt.Fprintf(w, "%-5d %-24s %-20s %-6s %12s %12s\n",
					c.ID, c.Name, c.JobTitle, family,
					c.WeeklyIncome.StringFixed(2), c.MonthlyIncome().StringFixed(2))
			}
			return nil
		},
	}
}

func newCustomersAddCommand(a *app) *cobra.Command {
	var (
		email        string
		phone        string
		jobTitle     string
		weeklyIncome string
		family       bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			income, err := decimal.NewFromString(weeklyIncome)
			if err != nil {
				return fmt.Errorf("bad weekly income %q: %w", weeklyIncome, err)
			}
			if income.IsNegative() {
				return fmt.Errorf("weekly income must not be negative")
			}
			c := &models.Customer{
				Name:           args[0],
				Email:          email,
				Phone:          phone,
				JobTitle:       jobTitle,
				WeeklyIncome:   income,
				IsFamilyMember: family,
			}
			if err := a.store.CreateCustomer(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created customer %d: %s\n", c.ID, c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&jobTitle, "job", "", "job title")
	cmd.Flags().StringVar(&weeklyIncome, "weekly-income", "0", "gross weekly income")
	cmd.Flags().BoolVar(&family, "family", false, "mark as family member")
	return cmd
}

func newCustomersRmCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad customer id %q", args[0])
			}
			return a.store.DeleteCustomer(cmd.Context(), id)
		},
	}
}
