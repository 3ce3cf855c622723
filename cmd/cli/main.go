package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/gobank/internal/adapter/console"
	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/app"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/logger"
	"github.com/iho/gobank/internal/usecase"
)

var errInconsistent = errors.New("ledger is inconsistent")

type options struct {
	dataDir  string
	logLevel string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "gobank",
		Short:         "GoBank account ledger",
		Long:          `A command line bank: accounts, deposits, withdrawals, transfers and statements backed by text files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Directory holding accounts.txt and transactions.txt (overrides DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")

	rootCmd.AddCommand(
		newMenuCmd(opts),
		newAccountsCmd(opts),
		newStatementCmd(opts),
		newReconcileCmd(opts),
		newSimulateCmd(opts),
	)

	return rootCmd
}

// withBank loads the bank, runs fn and flushes whatever fn changed.
func withBank(cmd *cobra.Command, opts *options, fn func(ctx context.Context, bank *app.Bank, log zerolog.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if opts.dataDir != "" {
		cfg.DataDir = opts.dataDir
	}

	log := logger.New(logger.Config{Level: opts.logLevel, Format: "console", Output: cmd.ErrOrStderr()})

	bank, err := app.New(cfg, nil, log)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if _, err := bank.Start(ctx); err != nil {
		return err
	}

	runErr := fn(ctx, bank, log)

	if _, err := bank.Shutdown(context.WithoutCancel(ctx)); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

func newMenuCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBank(cmd, opts, func(ctx context.Context, bank *app.Bank, log zerolog.Logger) error {
				svc := console.Services{
					Accounts:    bank.AccountUC,
					Transfers:   bank.TransferUC,
					Entries:     bank.EntryUC,
					Ledger:      bank.LedgerUC,
					Persistence: bank.PersistenceUC,
					Simulation:  bank.SimulationUC,
				}
				return console.New(svc, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run(ctx)
			})
		},
	}
}

func newAccountsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBank(cmd, opts, func(ctx context.Context, bank *app.Bank, _ zerolog.Logger) error {
				accounts, err := bank.AccountUC.ListAccounts(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.AccountsFromDomain(accounts))
			})
		},
	}
}

func newStatementCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "statement NUMBER",
		Short: "Print an account statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBank(cmd, opts, func(ctx context.Context, bank *app.Bank, _ zerolog.Logger) error {
				st, err := bank.EntryUC.Statement(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.StatementFromUseCase(st))
			})
		},
	}
}

func newReconcileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Check every account balance against the ledger",
		Long:  `Reconciles all accounts and exits with an error if any account disagrees with its entries.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBank(cmd, opts, func(ctx context.Context, bank *app.Bank, _ zerolog.Logger) error {
				results, err := bank.LedgerUC.ReconcileAllAccounts(ctx)
				if err != nil {
					return err
				}

				resp := make([]*dto.ReconciliationResponse, len(results))
				failed := 0
				for i, r := range results {
					resp[i] = dto.ReconciliationFromUseCase(r)
					if !r.IsReconciled {
						failed++
					}
				}
				if err := printJSON(cmd.OutOrStdout(), resp); err != nil {
					return err
				}

				if failed > 0 {
					return fmt.Errorf("%w: %d of %d accounts", errInconsistent, failed, len(results))
				}
				return nil
			})
		},
	}
}

func newSimulateCmd(opts *options) *cobra.Command {
	var (
		account string
		workers int
		rounds  int
		amount  string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run concurrent deposits and withdrawals against one account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := domain.ParseMoney(amount)
			if err != nil {
				return fmt.Errorf("--amount: %w", err)
			}

			return withBank(cmd, opts, func(ctx context.Context, bank *app.Bank, _ zerolog.Logger) error {
				result, err := bank.SimulationUC.Run(ctx, usecase.SimulationInput{
					AccountNumber: account,
					Workers:       workers,
					Rounds:        rounds,
					Amount:        value,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), simulationOutput(result))
			})
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account number")
	cmd.Flags().IntVar(&workers, "workers", 10, "Concurrent workers")
	cmd.Flags().IntVar(&rounds, "rounds", 1, "Deposit and withdrawal pairs per worker")
	cmd.Flags().StringVar(&amount, "amount", "1.00", "Amount of each operation")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

type simulationJSON struct {
	AccountNumber  string `json:"account_number"`
	Workers        int    `json:"workers"`
	Rounds         int    `json:"rounds"`
	InitialBalance string `json:"initial_balance"`
	FinalBalance   string `json:"final_balance"`
	Deposits       int64  `json:"deposits"`
	Withdrawals    int64  `json:"withdrawals"`
	Failures       int64  `json:"failures"`
	Duration       string `json:"duration"`
}

func simulationOutput(r *usecase.SimulationResult) simulationJSON {
	return simulationJSON{
		AccountNumber:  r.AccountNumber,
		Workers:        r.Workers,
		Rounds:         r.Rounds,
		InitialBalance: domain.FormatMoney(r.InitialBalance),
		FinalBalance:   domain.FormatMoney(r.FinalBalance),
		Deposits:       r.Deposits,
		Withdrawals:    r.Withdrawals,
		Failures:       r.Failures,
		Duration:       r.Duration.String(),
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
