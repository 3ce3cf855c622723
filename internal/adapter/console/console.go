// Package console is the interactive text menu over the bank use cases.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// Services are the use cases the menu drives.
type Services struct {
	Accounts    *usecase.AccountUseCase
	Transfers   *usecase.TransferUseCase
	Entries     *usecase.EntryUseCase
	Ledger      *usecase.LedgerUseCase
	Persistence *usecase.PersistenceUseCase
	Simulation  *usecase.SimulationUseCase
}

// Console reads menu choices from in and writes screens to out.
type Console struct {
	svc    Services
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger
}

// New creates a console.
func New(svc Services, in io.Reader, out io.Writer, logger zerolog.Logger) *Console {
	return &Console{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger.With().Str("component", "console").Logger(),
	}
}

// errQuit ends the menu loop.
var errQuit = errors.New("quit")

type menuItem struct {
	label  string
	action func(ctx context.Context) error
}

func (c *Console) menu() []menuItem {
	return []menuItem{
		{"Create account", c.createAccount},
		{"View accounts", c.listAccounts},
		{"Deposit", c.deposit},
		{"Withdraw", c.withdraw},
		{"Transfer", c.transfer},
		{"Account statement", c.statement},
		{"View all transactions", c.allTransactions},
		{"View customers", c.customers},
		{"Apply monthly fees", c.applyFees},
		{"Reconcile ledger", c.reconcile},
		{"Run concurrency simulation", c.simulate},
		{"Save data", c.save},
		{"Save and exit", c.exit},
	}
}

// Run shows the menu until the user exits or input ends. Leaving the menu
// always saves; the returned error is the final save's.
func (c *Console) Run(ctx context.Context) error {
	items := c.menu()
	for {
		if err := ctx.Err(); err != nil {
			return c.flush(context.WithoutCancel(ctx))
		}

		c.printMenu(items)
		line, ok := c.readLine("Enter choice:> ")
		if !ok {
			return c.flush(ctx)
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(items) {
			c.printf("\nInvalid choice. Please select an option between 1 and %d.\n", len(items))
			continue
		}

		err = items[choice-1].action(ctx)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			c.printf("\nERROR: %v\n", err)
		}
	}
}

func (c *Console) printMenu(items []menuItem) {
	c.printf("\n%s\n%s\n%s\n", strings.Repeat("=", 50), "  BANK ACCOUNT MANAGEMENT", strings.Repeat("=", 50))
	for i, item := range items {
		c.printf("%2d. %s\n", i+1, item.label)
	}
}

func (c *Console) createAccount(ctx context.Context) error {
	input := usecase.OpenAccountInput{}

	if id, _ := c.readLine("Existing customer ID (blank for new):> "); id != "" {
		input.CustomerID = id
	} else {
		input.Name, _ = c.readLine("Customer name:> ")
		age, err := c.readInt("Customer age:> ")
		if err != nil {
			return err
		}
		input.Age = age
		input.Contact, _ = c.readLine("Contact phone:> ")
		input.Address, _ = c.readLine("Address:> ")
		if t, _ := c.readLine("Customer type [Regular/Premium]:> "); t != "" {
			ct, err := domain.ParseCustomerType(t)
			if err != nil {
				return err
			}
			input.CustomerType = ct
		}
	}

	kind, _ := c.readLine("Account type [Savings/Checking]:> ")
	k, err := domain.ParseAccountKind(kind)
	if err != nil {
		return err
	}
	input.Kind = k

	deposit, err := c.readAmount("Initial deposit:> ")
	if err != nil {
		return err
	}
	input.InitialDeposit = deposit

	account, err := c.svc.Accounts.OpenAccount(ctx, input)
	if err != nil {
		return err
	}

	c.printf("\nAccount created.\n")
	writeAccount(c.out, account)
	return nil
}

func (c *Console) listAccounts(ctx context.Context) error {
	accounts, err := c.svc.Accounts.ListAccounts(ctx)
	if err != nil {
		return err
	}
	summary, err := c.svc.Accounts.Summary(ctx)
	if err != nil {
		return err
	}

	writeAccounts(c.out, accounts)
	c.printf("\nTotal accounts: %d\nTotal bank balance: %s\n", summary.Accounts, domain.FormatMoney(summary.TotalBalance))
	return nil
}

func (c *Console) deposit(ctx context.Context) error {
	return c.move(ctx, "Deposit", c.svc.Accounts.Deposit)
}

func (c *Console) withdraw(ctx context.Context) error {
	return c.move(ctx, "Withdrawal", c.svc.Accounts.Withdraw)
}

func (c *Console) move(ctx context.Context, label string, op func(context.Context, string, decimal.Decimal) (domain.Entry, error)) error {
	number, _ := c.readLine("Account number:> ")
	if _, err := c.svc.Accounts.GetAccount(ctx, number); err != nil {
		return err
	}
	amount, err := c.readAmount("Amount:> ")
	if err != nil {
		return err
	}

	entry, err := op(ctx, number, amount)
	if err != nil {
		return err
	}

	c.printf("\n%s successful.\n", label)
	writeEntries(c.out, []domain.Entry{entry})
	return nil
}

func (c *Console) transfer(ctx context.Context) error {
	from, _ := c.readLine("From account:> ")
	to, _ := c.readLine("To account:> ")
	amount, err := c.readAmount("Amount:> ")
	if err != nil {
		return err
	}

	t, err := c.svc.Transfers.CreateTransfer(ctx, usecase.CreateTransferInput{
		FromAccountID: from,
		ToAccountID:   to,
		Amount:        amount,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTransferFailed) {
			c.printf("\nTransfer rolled back; the source account was refunded.\n")
		}
		return err
	}

	c.printf("\nTransfer %s completed.\n", t.ID)
	writeEntries(c.out, []domain.Entry{t.Debit, *t.Credit})
	return nil
}

func (c *Console) statement(ctx context.Context) error {
	number, _ := c.readLine("Account number:> ")
	st, err := c.svc.Entries.Statement(ctx, number)
	if err != nil {
		return err
	}

	writeStatement(c.out, st)
	return nil
}

func (c *Console) allTransactions(ctx context.Context) error {
	sortName, _ := c.readLine("Sort [blank=recorded order, time, amount]:> ")
	sort, err := usecase.ParseEntrySort(sortName)
	if err != nil {
		return err
	}
	input := usecase.ListEntriesInput{Sort: sort}

	if k, _ := c.readLine("Kind filter [blank=all, Deposit, Withdrawal, ...]:> "); k != "" {
		kind, err := domain.ParseEntryKind(k)
		if err != nil {
			return err
		}
		input.Kind = kind
	}

	entries, err := c.svc.Entries.ListEntries(ctx, input)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		c.printf("\nNo transactions recorded.\n")
		return nil
	}
	writeEntries(c.out, entries)
	c.printf("\nTotal transactions: %d\n", len(entries))
	return nil
}

func (c *Console) customers(ctx context.Context) error {
	customers, err := c.svc.Accounts.ListCustomers(ctx)
	if err != nil {
		return err
	}
	writeCustomers(c.out, customers)
	return nil
}

func (c *Console) applyFees(ctx context.Context) error {
	results, err := c.svc.Accounts.ApplyMonthlyFees(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		switch {
		case r.Err != nil:
			c.printf("%s: not charged (%v)\n", r.AccountNumber, r.Err)
		case r.Applied:
			c.printf("%s: charged %s, balance %s\n", r.AccountNumber, domain.FormatMoney(r.Entry.Amount), domain.FormatMoney(r.Entry.ResultingBalance))
		default:
			c.printf("%s: waived\n", r.AccountNumber)
		}
	}
	return nil
}

func (c *Console) reconcile(ctx context.Context) error {
	results, err := c.svc.Ledger.ReconcileAllAccounts(ctx)
	if err != nil {
		return err
	}

	writeReconciliation(c.out, results)
	return nil
}

func (c *Console) simulate(ctx context.Context) error {
	number, _ := c.readLine("Account number:> ")
	workers, err := c.readInt(fmt.Sprintf("Workers (1-%d):> ", usecase.MaxSimulationWorkers))
	if err != nil {
		return err
	}
	rounds, err := c.readInt("Rounds per worker:> ")
	if err != nil {
		return err
	}
	amount, err := c.readAmount("Amount per operation:> ")
	if err != nil {
		return err
	}

	res, err := c.svc.Simulation.Run(ctx, usecase.SimulationInput{
		AccountNumber: number,
		Workers:       workers,
		Rounds:        rounds,
		Amount:        amount,
	})
	if err != nil {
		return err
	}

	writeSimulation(c.out, res)
	return nil
}

func (c *Console) save(ctx context.Context) error {
	res, err := c.svc.Persistence.Flush(ctx)
	if err != nil {
		return err
	}
	c.printf("\nSaved %d accounts and %d new transactions.\n", res.AccountsSaved, res.EntriesWritten)
	return nil
}

func (c *Console) exit(ctx context.Context) error {
	if err := c.flush(ctx); err != nil {
		return err
	}
	return errQuit
}

func (c *Console) flush(ctx context.Context) error {
	if _, err := c.svc.Persistence.Flush(ctx); err != nil {
		c.logger.Error().Err(err).Msg("save on exit failed")
		return err
	}
	c.printf("\nData saved. Goodbye!\n")
	return nil
}

func (c *Console) readLine(prompt string) (string, bool) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) readInt(prompt string) (int, error) {
	line, _ := c.readLine(prompt)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", line)
	}
	return n, nil
}

func (c *Console) readAmount(prompt string) (decimal.Decimal, error) {
	line, _ := c.readLine(prompt)
	return domain.ParseMoney(line)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
