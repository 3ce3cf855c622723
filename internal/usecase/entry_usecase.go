package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// EntrySort selects the order of an entry listing.
type EntrySort string

const (
	EntrySortInsertion EntrySort = ""
	EntrySortTime      EntrySort = "time"
	EntrySortAmount    EntrySort = "amount"
)

// ParseEntrySort parses a sort name. The empty string keeps insertion order.
func ParseEntrySort(s string) (EntrySort, error) {
	switch EntrySort(strings.ToLower(strings.TrimSpace(s))) {
	case EntrySortInsertion:
		return EntrySortInsertion, nil
	case EntrySortTime:
		return EntrySortTime, nil
	case EntrySortAmount:
		return EntrySortAmount, nil
	default:
		return "", fmt.Errorf("unknown sort %q", s)
	}
}

// EntryUseCase handles ledger queries.
type EntryUseCase struct {
	ledgerRepo  LedgerRepository
	accountRepo AccountRepository
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(ledgerRepo LedgerRepository, accountRepo AccountRepository) *EntryUseCase {
	return &EntryUseCase{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}
}

// ListEntriesInput filters and orders an entry listing. Empty fields match everything.
type ListEntriesInput struct {
	AccountNumber string
	Kind          domain.EntryKind
	Sort          EntrySort
}

// ListEntries returns a snapshot of matching entries.
func (uc *EntryUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]domain.Entry, error) {
	var entries []domain.Entry
	if input.AccountNumber != "" {
		account, err := uc.accountRepo.FindAccount(input.AccountNumber)
		if err != nil {
			return nil, err
		}
		entries = uc.ledgerRepo.ByAccount(account.Number())
	} else {
		entries = uc.ledgerRepo.All()
	}

	if input.Kind != "" {
		entries = domain.FilterEntriesByKind(entries, input.Kind)
	}

	switch input.Sort {
	case EntrySortTime:
		entries = domain.SortEntriesByTimeDesc(entries)
	case EntrySortAmount:
		entries = domain.SortEntriesByAmount(entries)
	}

	return entries, nil
}

// Statement is an account's history with totals.
type Statement struct {
	GeneratedAt  time.Time
	Account      *domain.Account
	Balance      decimal.Decimal
	Entries      []domain.Entry
	TotalCredits decimal.Decimal
	TotalDebits  decimal.Decimal
	NetChange    decimal.Decimal
}

// Statement returns the account's entries newest first with credit and debit totals.
func (uc *EntryUseCase) Statement(ctx context.Context, number string) (*Statement, error) {
	account, err := uc.accountRepo.FindAccount(number)
	if err != nil {
		return nil, err
	}

	entries := domain.SortEntriesByTimeDesc(uc.ledgerRepo.ByAccount(account.Number()))

	st := &Statement{
		GeneratedAt:  time.Now(),
		Account:      account,
		Balance:      account.Balance(),
		Entries:      entries,
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
	}
	for _, e := range entries {
		if e.Kind.IsCredit() {
			st.TotalCredits = st.TotalCredits.Add(e.Amount)
		} else {
			st.TotalDebits = st.TotalDebits.Add(e.Amount)
		}
	}
	st.NetChange = st.TotalCredits.Sub(st.TotalDebits)

	return st, nil
}
