package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// Policies are the limits copied into each new account by kind.
type Policies struct {
	Savings  domain.Policy
	Checking domain.Policy
}

// DefaultPolicies returns the standard savings and checking limits.
func DefaultPolicies() Policies {
	return Policies{
		Savings:  domain.DefaultSavingsPolicy(),
		Checking: domain.DefaultCheckingPolicy(),
	}
}

// For returns the policy for kind.
func (p Policies) For(kind domain.AccountKind) (domain.Policy, error) {
	switch kind {
	case domain.AccountKindSavings:
		return p.Savings, nil
	case domain.AccountKindChecking:
		return p.Checking, nil
	default:
		return domain.Policy{}, fmt.Errorf("%w: %q", domain.ErrInvalidAccountKind, kind)
	}
}

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	ledgerRepo  LedgerRepository
	policies    Policies
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewAccountUseCase creates a new AccountUseCase. m may be nil.
func NewAccountUseCase(
	accountRepo AccountRepository,
	ledgerRepo LedgerRepository,
	policies Policies,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		policies:    policies,
		metrics:     m,
		logger:      logger.With().Str("component", "accounts").Logger(),
	}
}

// OpenAccountInput represents input for opening an account. When CustomerID
// is set the account joins that existing customer and the other customer
// fields are ignored.
type OpenAccountInput struct {
	CustomerID     string
	Name           string
	Age            int
	Contact        string
	Address        string
	CustomerType   domain.CustomerType
	Kind           domain.AccountKind
	InitialDeposit decimal.Decimal
}

// OpenAccount opens an account funded by its initial deposit.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	kind, err := domain.ParseAccountKind(string(input.Kind))
	if err != nil {
		return nil, err
	}

	policy, err := uc.policies.For(kind)
	if err != nil {
		return nil, err
	}

	customer, err := uc.resolveCustomer(input)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.InitialDeposit); err != nil {
		return nil, err
	}

	account, _, err := domain.OpenAccount(domain.OpenAccountParams{
		Number:         uc.accountRepo.NextAccountNumber(),
		Kind:           kind,
		Customer:       customer,
		Policy:         policy,
		InitialDeposit: input.InitialDeposit,
		Journal:        uc.ledgerRepo,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Add(account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsOpened.Inc()
		uc.metrics.LedgerEntries.Set(float64(uc.ledgerRepo.Count()))
	}

	uc.logger.Info().
		Str("account", account.Number()).
		Str("customer", customer.ID).
		Str("kind", string(kind)).
		Str("initial_deposit", domain.FormatMoney(input.InitialDeposit)).
		Msg("account opened")

	return account, nil
}

func (uc *AccountUseCase) resolveCustomer(input OpenAccountInput) (*domain.Customer, error) {
	if id := strings.ToUpper(strings.TrimSpace(input.CustomerID)); id != "" {
		customer, ok := uc.accountRepo.FindCustomer(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, id)
		}
		return customer, nil
	}

	customerType := input.CustomerType
	if customerType == "" {
		customerType = domain.CustomerTypeRegular
	}

	customer := &domain.Customer{
		Name:    strings.TrimSpace(input.Name),
		Age:     input.Age,
		Contact: strings.TrimSpace(input.Contact),
		Address: strings.TrimSpace(input.Address),
		Type:    customerType,
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	customer.ID = uc.accountRepo.NextCustomerID()
	return customer, nil
}

// GetAccount retrieves an account by number.
func (uc *AccountUseCase) GetAccount(ctx context.Context, number string) (*domain.Account, error) {
	return uc.accountRepo.FindAccount(number)
}

// ListAccounts returns every account ordered by number.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(), nil
}

// ListCustomers returns every customer ordered by identifier.
func (uc *AccountUseCase) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return uc.accountRepo.Customers(), nil
}

// Deposit adds amount to the account.
func (uc *AccountUseCase) Deposit(ctx context.Context, number string, amount decimal.Decimal) (domain.Entry, error) {
	account, err := uc.accountRepo.FindAccount(number)
	if err != nil {
		return domain.Entry{}, err
	}

	entry, err := account.Deposit(amount)
	uc.observe("deposit", err)
	if err != nil {
		return domain.Entry{}, err
	}

	return entry, nil
}

// Withdraw removes amount from the account.
func (uc *AccountUseCase) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (domain.Entry, error) {
	account, err := uc.accountRepo.FindAccount(number)
	if err != nil {
		return domain.Entry{}, err
	}

	entry, err := account.Withdraw(amount)
	uc.observe("withdraw", err)
	if err != nil {
		return domain.Entry{}, err
	}

	return entry, nil
}

// CloseAccount marks the account closed.
func (uc *AccountUseCase) CloseAccount(ctx context.Context, number string) (*domain.Account, error) {
	account, err := uc.accountRepo.FindAccount(number)
	if err != nil {
		return nil, err
	}

	if account.Status() == domain.AccountStatusClosed {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountClosed, account.Number())
	}

	account.Close()
	if uc.metrics != nil {
		uc.metrics.AccountsClosed.Inc()
	}

	uc.logger.Info().Str("account", account.Number()).Msg("account closed")
	return account, nil
}

// FeeResult is the outcome of charging one account's monthly fee.
type FeeResult struct {
	AccountNumber string
	Applied       bool
	Entry         *domain.Entry
	Err           error
}

// ApplyMonthlyFee charges the monthly fee of one checking account.
func (uc *AccountUseCase) ApplyMonthlyFee(ctx context.Context, number string) (FeeResult, error) {
	account, err := uc.accountRepo.FindAccount(number)
	if err != nil {
		return FeeResult{}, err
	}

	entry, applied, err := account.ApplyMonthlyFee()
	uc.observe("fee", err)
	if err != nil {
		return FeeResult{}, err
	}

	result := FeeResult{AccountNumber: account.Number(), Applied: applied}
	if applied {
		result.Entry = &entry
	}
	return result, nil
}

// ApplyMonthlyFees charges every active checking account. Failures on one
// account do not stop the run; they are reported per account.
func (uc *AccountUseCase) ApplyMonthlyFees(ctx context.Context) ([]FeeResult, error) {
	var results []FeeResult
	for _, account := range uc.accountRepo.List() {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if account.Kind() != domain.AccountKindChecking || account.Status() != domain.AccountStatusActive {
			continue
		}

		entry, applied, err := account.ApplyMonthlyFee()
		uc.observe("fee", err)

		result := FeeResult{AccountNumber: account.Number(), Applied: applied, Err: err}
		if applied {
			result.Entry = &entry
		}
		if err != nil {
			uc.logger.Warn().Err(err).Str("account", account.Number()).Msg("monthly fee not charged")
		}
		results = append(results, result)
	}
	return results, nil
}

// CalculateInterest returns the interest a savings account's balance would earn.
func (uc *AccountUseCase) CalculateInterest(ctx context.Context, number string) (decimal.Decimal, error) {
	account, err := uc.accountRepo.FindAccount(number)
	if err != nil {
		return decimal.Zero, err
	}
	if account.Kind() != domain.AccountKindSavings {
		return decimal.Zero, fmt.Errorf("%w: interest applies to savings accounts", domain.ErrInvalidAccountKind)
	}
	return account.CalculateInterest(), nil
}

// BankSummary holds bank-wide totals.
type BankSummary struct {
	Accounts     int
	Customers    int
	Entries      int
	TotalBalance decimal.Decimal
}

// Summary returns bank-wide totals.
func (uc *AccountUseCase) Summary(ctx context.Context) (BankSummary, error) {
	accounts := uc.accountRepo.List()

	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance())
	}

	return BankSummary{
		Accounts:     len(accounts),
		Customers:    len(uc.accountRepo.Customers()),
		Entries:      uc.ledgerRepo.Count(),
		TotalBalance: total,
	}, nil
}

func (uc *AccountUseCase) observe(op string, err error) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.AccountOperations.WithLabelValues(op, outcome(err)).Inc()
	if err == nil {
		uc.metrics.LedgerEntries.Set(float64(uc.ledgerRepo.Count()))
	}
}

// outcome labels an operation result for metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrAmountTooLarge):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrOverdraftExceeded):
		return "overdraft_exceeded"
	case errors.Is(err, domain.ErrAccountClosed):
		return "account_closed"
	default:
		return "error"
	}
}
