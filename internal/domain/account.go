package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind selects the balance policy of an account.
type AccountKind string

const (
	AccountKindSavings  AccountKind = "Savings"
	AccountKindChecking AccountKind = "Checking"
)

// ParseAccountKind parses a kind case-insensitively.
func ParseAccountKind(s string) (AccountKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "savings":
		return AccountKindSavings, nil
	case "checking":
		return AccountKindChecking, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountKind, s)
	}
}

// AccountStatus is Active until the account is closed.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "Active"
	AccountStatusClosed AccountStatus = "Closed"
)

// Policy holds the kind-specific limits fixed when an account is opened.
type Policy struct {
	MinimumBalance decimal.Decimal // Savings floor
	InterestRate   decimal.Decimal // Savings
	OverdraftLimit decimal.Decimal // Checking ceiling, as a positive amount
	MonthlyFee     decimal.Decimal // Checking
}

// DefaultSavingsPolicy returns the standard savings limits.
func DefaultSavingsPolicy() Policy {
	return Policy{
		MinimumBalance: decimal.NewFromInt(500),
		InterestRate:   decimal.RequireFromString("0.035"),
	}
}

// DefaultCheckingPolicy returns the standard checking limits.
func DefaultCheckingPolicy() Policy {
	return Policy{
		OverdraftLimit: decimal.NewFromInt(1000),
		MonthlyFee:     decimal.NewFromInt(10),
	}
}

// Journal is the shared ledger an account writes to. Record assigns the
// entry its identity and timestamp and returns the stored copy.
type Journal interface {
	Record(entry Entry) (Entry, error)
}

// Account owns one balance. Every mutation runs check-then-commit under the
// account's own mutex and records exactly one entry in the journal.
type Account struct {
	mu      sync.Mutex
	balance decimal.Decimal
	status  AccountStatus

	number    string
	kind      AccountKind
	customer  *Customer
	policy    Policy
	journal   Journal
	createdAt time.Time
}

// OpenAccountParams describes a new account.
type OpenAccountParams struct {
	Number         string
	Kind           AccountKind
	Customer       *Customer
	Policy         Policy
	InitialDeposit decimal.Decimal
	Journal        Journal
}

// OpenAccount creates an account funded by its initial deposit and records
// that deposit as the account's first entry.
func OpenAccount(p OpenAccountParams) (*Account, Entry, error) {
	if err := ValidateAmount(p.InitialDeposit); err != nil {
		return nil, Entry{}, err
	}

	acc, err := newAccount(p.Number, p.Kind, p.Customer, p.Policy, p.Journal)
	if err != nil {
		return nil, Entry{}, err
	}

	if err := acc.checkFloor(decimal.Zero, p.InitialDeposit, p.InitialDeposit); err != nil {
		return nil, Entry{}, err
	}

	entry, err := acc.DepositWithKind(p.InitialDeposit, EntryKindDeposit)
	if err != nil {
		return nil, Entry{}, err
	}

	return acc, entry, nil
}

// RestoreAccount rebuilds a persisted account without recording an entry.
func RestoreAccount(number string, kind AccountKind, customer *Customer, policy Policy, balance decimal.Decimal, journal Journal) (*Account, error) {
	acc, err := newAccount(number, kind, customer, policy, journal)
	if err != nil {
		return nil, err
	}
	acc.balance = balance
	return acc, nil
}

func newAccount(number string, kind AccountKind, customer *Customer, policy Policy, journal Journal) (*Account, error) {
	if err := ValidateAccountNumber(number); err != nil {
		return nil, err
	}
	if _, err := ParseAccountKind(string(kind)); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: account %s has no customer", ErrInvalidCustomerName, number)
	}
	if journal == nil {
		return nil, fmt.Errorf("account %s: journal is required", number)
	}

	return &Account{
		number:    number,
		kind:      kind,
		customer:  customer,
		policy:    policy,
		journal:   journal,
		balance:   decimal.Zero,
		status:    AccountStatusActive,
		createdAt: time.Now().UTC(),
	}, nil
}

// Number returns the immutable account number.
func (a *Account) Number() string { return a.number }

// Kind returns the account kind.
func (a *Account) Kind() AccountKind { return a.kind }

// Customer returns the owning customer.
func (a *Account) Customer() *Customer { return a.customer }

// Policy returns the limits fixed at creation.
func (a *Account) Policy() Policy { return a.policy }

// CreatedAt returns when the account object was created.
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// Balance returns the committed balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Status returns the account status.
func (a *Account) Status() AccountStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Close marks the account closed. Closed accounts reject deposits and withdrawals.
func (a *Account) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = AccountStatusClosed
}

// Floor returns the lowest balance a committed mutation may leave.
func (a *Account) Floor() decimal.Decimal {
	if a.kind == AccountKindSavings {
		return a.policy.MinimumBalance
	}
	return a.policy.OverdraftLimit.Neg()
}

// Deposit adds amount and records a Deposit entry.
func (a *Account) Deposit(amount decimal.Decimal) (Entry, error) {
	return a.DepositWithKind(amount, EntryKindDeposit)
}

// Withdraw removes amount and records a Withdrawal entry.
func (a *Account) Withdraw(amount decimal.Decimal) (Entry, error) {
	return a.WithdrawWithKind(amount, EntryKindWithdrawal)
}

// DepositWithKind adds amount and records an entry labelled kind, which must
// be a credit kind. Reversals are accepted on closed accounts so that a
// compensation can always land.
func (a *Account) DepositWithKind(amount decimal.Decimal, kind EntryKind) (Entry, error) {
	if err := ValidateAmount(amount); err != nil {
		return Entry{}, err
	}
	if !kind.IsCredit() {
		return Entry{}, fmt.Errorf("%w: %q is not a credit kind", ErrInvalidEntry, kind)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status == AccountStatusClosed && kind != EntryKindReversal {
		return Entry{}, fmt.Errorf("%w: %s", ErrAccountClosed, a.number)
	}

	return a.commit(kind, amount, a.balance.Add(amount))
}

// WithdrawWithKind removes amount and records an entry labelled kind, which
// must be a debit kind. The floor check is the same for every kind.
func (a *Account) WithdrawWithKind(amount decimal.Decimal, kind EntryKind) (Entry, error) {
	if err := ValidateAmount(amount); err != nil {
		return Entry{}, err
	}
	if kind.IsCredit() {
		return Entry{}, fmt.Errorf("%w: %q is not a debit kind", ErrInvalidEntry, kind)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	return a.withdrawLocked(amount, kind)
}

// ApplyMonthlyFee debits the checking fee as a Fee entry. It reports false
// without touching the balance when the customer's fees are waived.
func (a *Account) ApplyMonthlyFee() (Entry, bool, error) {
	if a.kind != AccountKindChecking {
		return Entry{}, false, fmt.Errorf("%w: monthly fee applies to checking accounts", ErrInvalidAccountKind)
	}
	if a.customer.WaivesFees() || !a.policy.MonthlyFee.IsPositive() {
		return Entry{}, false, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	entry, err := a.withdrawLocked(a.policy.MonthlyFee, EntryKindFee)
	if err != nil {
		return Entry{}, false, err
	}
	return entry, true, nil
}

// CalculateInterest returns the interest the current balance would earn,
// rounded to the cent. It is zero for checking accounts.
func (a *Account) CalculateInterest() decimal.Decimal {
	if a.kind != AccountKindSavings {
		return decimal.Zero
	}
	return a.Balance().Mul(a.policy.InterestRate).Round(MoneyScale)
}

// withdrawLocked must be called with a.mu held.
func (a *Account) withdrawLocked(amount decimal.Decimal, kind EntryKind) (Entry, error) {
	if a.status == AccountStatusClosed {
		return Entry{}, fmt.Errorf("%w: %s", ErrAccountClosed, a.number)
	}

	resulting := a.balance.Sub(amount)
	if err := a.checkFloor(a.balance, amount, resulting); err != nil {
		return Entry{}, err
	}

	return a.commit(kind, amount, resulting)
}

// commit records the entry first and only then publishes the new balance,
// so a rejected entry leaves the account untouched. Must be called with a.mu held.
func (a *Account) commit(kind EntryKind, amount, resulting decimal.Decimal) (Entry, error) {
	entry, err := a.journal.Record(Entry{
		AccountNumber:    a.number,
		Kind:             kind,
		Amount:           amount,
		ResultingBalance: resulting,
	})
	if err != nil {
		return Entry{}, err
	}

	a.balance = resulting
	return entry, nil
}

func (a *Account) checkFloor(balance, amount, resulting decimal.Decimal) error {
	switch a.kind {
	case AccountKindSavings:
		if resulting.LessThan(a.policy.MinimumBalance) {
			return fmt.Errorf("%w: %s would leave %s on %s, minimum balance is %s",
				ErrInsufficientFunds, FormatMoney(amount), FormatMoney(resulting), a.number, FormatMoney(a.policy.MinimumBalance))
		}
	case AccountKindChecking:
		if resulting.LessThan(a.policy.OverdraftLimit.Neg()) {
			return fmt.Errorf("%w: balance %s, attempted %s on %s, overdraft limit is %s",
				ErrOverdraftExceeded, FormatMoney(balance), FormatMoney(amount), a.number, FormatMoney(a.policy.OverdraftLimit))
		}
	}
	return nil
}
