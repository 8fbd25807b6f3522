package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/famledger/famledger/internal/models"
)

func newVendorsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Manage vendors",
	}
	cmd.AddCommand(
		newVendorsListCommand(a),
		newVendorsAddCommand(a),
		newVendorsRmCommand(a),
	)
	return cmd
}

func newVendorsListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			vendors, err := a.store.Vendors(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-5s %-24s %-24s %12s\n", "ID", "NAME", "EMAIL", "BALANCE")
			for _, v := range vendors {
				// Positive balance = owed to the vendor.
				fmt.Fprintf(w, "%-5d %-24s %-24s %12s\n",
					v.ID, v.Name, v.Email, v.Balance.StringFixed(2))
			}
			return nil
		},
	}
}

func newVendorsAddCommand(a *app) *cobra.Command {
	var email, phone string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			v := &models.Vendor{Name: args[0], Email: email, Phone: phone}
			if err := a.store.CreateVendor(cmd.Context(), v); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created vendor %d: %s\n", v.ID, v.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	return cmd
}

func newVendorsRmCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad vendor id %q", args[0])
			}
			return a.store.DeleteVendor(cmd.Context(), id)
		},
	}
}
