// Package commands wires the core services into the famledger CLI.
package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/famledger/famledger/internal/auth"
	"github.com/famledger/famledger/internal/config"
	"github.com/famledger/famledger/internal/kvstore"
	"github.com/famledger/famledger/internal/ledger"
	"github.com/famledger/famledger/internal/storage"
	"github.com/famledger/famledger/internal/storage/sqlite"
	"github.com/famledger/famledger/pkg/logging"
)

var errNotLoggedIn = errors.New("not logged in: run 'famledger login'")

// app holds the opened services shared by every subcommand.
type app struct {
	dataDir string // --data-dir override, empty = config default

	cfg    config.Config
	logger *slog.Logger
	store  storage.Store
	ledger *ledger.Service
	auth   *auth.Service
	kv     *kvstore.Store
}

// open resolves configuration and brings up storage, the ledger service
// and the auth service. Failure here is fatal to the command; per-entity
// operations report their own errors.
func (a *app) open() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	a.cfg = cfg
	a.logger = logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.store = store
	a.ledger = ledger.NewService(store, a.logger)

	kv, err := kvstore.New(cfg.StateDir())
	if err != nil {
		store.Close()
		return err
	}
	a.kv = kv

	authSvc, err := auth.NewService(kv, a.logger)
	if err != nil {
		store.Close()
		return fmt.Errorf("initializing auth: %w", err)
	}
	a.auth = authSvc
	return nil
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("failed to close database", "error", err)
		}
	}
}

// requireLogin gates ledger operations behind an authenticated session.
func (a *app) requireLogin() error {
	if !a.auth.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "famledger",
		Short: "Local family bookkeeping",
		Long: "FamLedger tracks family accounts, members, vendors and expenses\n" +
			"in a local SQLite ledger, behind a password-gated local login.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dataDir, "data-dir", "",
		"data directory (default: Documents/FamLedger)")

	rootCmd.AddCommand(
		newAccountsCommand(a),
		newCustomersCommand(a),
		newVendorsCommand(a),
		newExpenseCommand(a),
		newTxCommand(a),
		newBalancesCommand(a),
		newSummaryCommand(a),
		newLoginCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newPasswdCommand(a),
		newSettingsCommand(a),
	)

	return rootCmd
}
