package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/famledger/famledger/internal/config"
)

func newSettingsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change application settings",
	}
	cmd.AddCommand(
		newSettingsShowCommand(a),
		newSettingsSetCommand(a),
	)
	return cmd
}

func newSettingsShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			s := config.LoadSettings(a.kv)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dark-mode:      %v\n", s.DarkMode)
			fmt.Fprintf(w, "compact-view:   %v\n", s.CompactView)
			fmt.Fprintf(w, "currency:       %s\n", s.Currency)
			fmt.Fprintf(w, "budget-period:  %s\n", s.BudgetPeriod)
			fmt.Fprintf(w, "monthly-budget: %s\n", s.MonthlyBudget.StringFixed(2))
			fmt.Fprintf(w, "family-members: %d\n", s.FamilyMembers)
			return nil
		},
	}
}

func newSettingsSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: "Recognized keys: dark-mode, compact-view, currency, budget-period,\n" +
			"monthly-budget, family-members. Unrecognized keys are rejected.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			s := config.LoadSettings(a.kv)

			key, value := args[0], args[1]
			switch key {
			case "dark-mode", "compact-view":
				b, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("bad boolean %q", value)
				}
				if key == "dark-mode" {
					s.DarkMode = b
				} else {
					s.CompactView = b
				}
			case "currency":
				s.Currency = value
			case "budget-period":
				s.BudgetPeriod = value
			case "monthly-budget":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return fmt.Errorf("bad amount %q: %w", value, err)
				}
				s.MonthlyBudget = d
			case "family-members":
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("bad count %q", value)
				}
				s.FamilyMembers = n
			default:
				return fmt.Errorf("unknown setting %q", key)
			}

			if err := config.SaveSettings(a.kv, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
			return nil
		},
	}
}
