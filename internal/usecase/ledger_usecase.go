package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

var (
	// ErrInconsistentLedger is returned when an account disagrees with its entries.
	ErrInconsistentLedger = errors.New("ledger is inconsistent with account balances")
)

// LedgerUseCase checks that account balances agree with the ledger.
type LedgerUseCase struct {
	accountRepo AccountRepository
	ledgerRepo  LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(accountRepo AccountRepository, ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// ReconciliationResult represents the result of a reconciliation check
type ReconciliationResult struct {
	AccountNumber   string
	RecordedBalance decimal.Decimal
	LedgerBalance   decimal.Decimal
	Difference      decimal.Decimal
	Entries         int
	Issues          []string
	IsReconciled    bool
	LastChecked     time.Time
}

// ReconcileAccount compares the account balance with the resulting balance
// of its last entry and checks that every entry follows from the one before.
// Results are only meaningful while the account is not being mutated.
func (uc *LedgerUseCase) ReconcileAccount(ctx context.Context, number string) (*ReconciliationResult, error) {
	account, err := uc.accountRepo.FindAccount(number)
	if err != nil {
		return nil, err
	}

	entries := uc.ledgerRepo.ByAccount(account.Number())
	recorded := account.Balance()

	result := &ReconciliationResult{
		AccountNumber:   account.Number(),
		RecordedBalance: recorded,
		LedgerBalance:   decimal.Zero,
		Entries:         len(entries),
		LastChecked:     time.Now().UTC(),
	}

	for i, e := range entries {
		if i == 0 {
			continue
		}
		want := entries[i-1].ResultingBalance.Add(e.SignedAmount())
		if !want.Equal(e.ResultingBalance) {
			result.Issues = append(result.Issues, fmt.Sprintf("%s: expected balance %s, recorded %s",
				e.ID, domain.FormatMoney(want), domain.FormatMoney(e.ResultingBalance)))
		}
	}

	if len(entries) > 0 {
		result.LedgerBalance = entries[len(entries)-1].ResultingBalance
	} else {
		result.Issues = append(result.Issues, "account has no entries")
	}

	result.Difference = recorded.Sub(result.LedgerBalance)
	if !result.Difference.IsZero() {
		result.Issues = append(result.Issues, fmt.Sprintf("balance %s differs from ledger balance %s",
			domain.FormatMoney(recorded), domain.FormatMoney(result.LedgerBalance)))
	}

	result.IsReconciled = len(result.Issues) == 0
	return result, nil
}

// ReconcileAllAccounts reconciles all accounts in the system
func (uc *LedgerUseCase) ReconcileAllAccounts(ctx context.Context) ([]*ReconciliationResult, error) {
	accounts := uc.accountRepo.List()

	results := make([]*ReconciliationResult, 0, len(accounts))
	for _, account := range accounts {
		result, err := uc.ReconcileAccount(ctx, account.Number())
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile account %s: %w", account.Number(), err)
		}
		results = append(results, result)
	}

	return results, nil
}

// CheckConsistency reports whether every account reconciles. It returns
// ErrInconsistentLedger naming the first failing account otherwise.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	results, err := uc.ReconcileAllAccounts(ctx)
	if err != nil {
		return false, err
	}

	for _, r := range results {
		if !r.IsReconciled {
			return false, fmt.Errorf("%w: %s: %s", ErrInconsistentLedger, r.AccountNumber, r.Issues[0])
		}
	}

	return true, nil
}
