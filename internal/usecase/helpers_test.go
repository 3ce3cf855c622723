package usecase_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/adapter/repository/memory"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

type bank struct {
	accounts  *memory.AccountRepository
	ledger    *memory.LedgerRepository
	transfers *memory.TransferRepository

	accountUC  *usecase.AccountUseCase
	transferUC *usecase.TransferUseCase
	entryUC    *usecase.EntryUseCase
	ledgerUC   *usecase.LedgerUseCase
}

func newBank() *bank {
	b := &bank{
		accounts:  memory.NewAccountRepository(),
		ledger:    memory.NewLedgerRepository(nil),
		transfers: memory.NewTransferRepository(),
	}
	logger := zerolog.Nop()
	b.accountUC = usecase.NewAccountUseCase(b.accounts, b.ledger, usecase.DefaultPolicies(), nil, logger)
	b.transferUC = usecase.NewTransferUseCase(b.accounts, b.transfers, memory.NewULIDGenerator(), nil, logger)
	b.entryUC = usecase.NewEntryUseCase(b.ledger, b.accounts)
	b.ledgerUC = usecase.NewLedgerUseCase(b.accounts, b.ledger)
	return b
}

func openInput(kind domain.AccountKind, deposit string) usecase.OpenAccountInput {
	return usecase.OpenAccountInput{
		Name:           "Ada Lovelace",
		Age:            36,
		Contact:        "+44 20 7946 0000",
		Address:        "12 St James's Square, London",
		Kind:           kind,
		InitialDeposit: decimal.RequireFromString(deposit),
	}
}

func (b *bank) open(t *testing.T, kind domain.AccountKind, deposit string) *domain.Account {
	t.Helper()
	account, err := b.accountUC.OpenAccount(t.Context(), openInput(kind, deposit))
	if err != nil {
		t.Fatalf("open %s account: %v", kind, err)
	}
	return account
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// failingJournal rejects entries of the listed kinds and accepts the rest.
type failingJournal struct {
	reject map[domain.EntryKind]error
	inner  domain.Journal
}

func (j *failingJournal) Record(entry domain.Entry) (domain.Entry, error) {
	if err, ok := j.reject[entry.Kind]; ok {
		return domain.Entry{}, err
	}
	return j.inner.Record(entry)
}
