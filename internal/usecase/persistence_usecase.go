package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
)

// PersistenceUseCase loads state at startup and flushes it at shutdown.
type PersistenceUseCase struct {
	accountRepo AccountRepository
	ledgerRepo  LedgerRepository
	gateway     PersistenceGateway
	policies    Policies
	logger      zerolog.Logger
}

// NewPersistenceUseCase creates a new PersistenceUseCase.
func NewPersistenceUseCase(
	accountRepo AccountRepository,
	ledgerRepo LedgerRepository,
	gateway PersistenceGateway,
	policies Policies,
	logger zerolog.Logger,
) *PersistenceUseCase {
	return &PersistenceUseCase{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		gateway:     gateway,
		policies:    policies,
		logger:      logger.With().Str("component", "persistence").Logger(),
	}
}

// LoadResult summarises a startup load.
type LoadResult struct {
	Accounts        int
	SkippedAccounts int
	Entries         LoadStats
	SkippedEntries  int
}

// Load restores accounts and then entries, the latter ordered by sequence.
// Records that conflict with state already loaded are logged and skipped.
func (uc *PersistenceUseCase) Load(ctx context.Context) (*LoadResult, error) {
	records, err := uc.gateway.LoadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{}
	for _, rec := range records {
		if err := uc.restore(rec); err != nil {
			result.SkippedAccounts++
			uc.logger.Warn().Err(err).Str("account", rec.Number).Msg("skipping stored account")
			continue
		}
		result.Accounts++
	}

	entries, stats, err := uc.gateway.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}
	result.Entries = stats

	// Deferred entries land in the file after newer ones; replay in commit order.
	slices.SortStableFunc(entries, func(a, b domain.Entry) int { return cmp.Compare(a.Seq, b.Seq) })

	for _, e := range entries {
		if err := uc.ledgerRepo.Append(e); err != nil {
			result.SkippedEntries++
			uc.logger.Warn().Err(err).Str("entry_id", e.ID).Msg("skipping stored entry")
			continue
		}
		if _, err := uc.accountRepo.FindAccount(e.AccountNumber); err != nil {
			uc.logger.Warn().Str("entry_id", e.ID).Str("account", e.AccountNumber).Msg("entry refers to unknown account")
		}
	}

	uc.logger.Info().
		Int("accounts", result.Accounts).
		Int("entries", uc.ledgerRepo.Count()).
		Msg("state loaded")

	return result, nil
}

func (uc *PersistenceUseCase) restore(rec AccountRecord) error {
	policy, err := uc.policies.For(rec.Kind)
	if err != nil {
		return err
	}

	customer, ok := uc.accountRepo.FindCustomer(rec.Customer.ID)
	if !ok {
		c := rec.Customer
		if err := c.Validate(); err != nil {
			return err
		}
		if c.ID == "" {
			c.ID = uc.accountRepo.NextCustomerID()
		}
		customer = &c
	}

	account, err := domain.RestoreAccount(rec.Number, rec.Kind, customer, policy, rec.Balance, uc.ledgerRepo)
	if err != nil {
		return err
	}

	return uc.accountRepo.Restore(account)
}

// FlushResult summarises a flush.
type FlushResult struct {
	EntriesWritten int
	AccountsSaved  int
	NewAccounts    int
}

// Flush writes every entry not yet persisted and saves all accounts with
// their current balances. A failure never touches in-memory state; entries
// that failed to write stay pending for the next flush.
func (uc *PersistenceUseCase) Flush(ctx context.Context) (*FlushResult, error) {
	result := &FlushResult{}
	var errs []error

	pending := uc.ledgerRepo.Unflushed()
	written, err := uc.gateway.FlushEntries(ctx, pending)
	if err != nil {
		errs = append(errs, err)
	} else {
		ids := make([]string, len(pending))
		for i, e := range pending {
			ids[i] = e.ID
		}
		uc.ledgerRepo.MarkFlushed(ids)
		result.EntriesWritten = written
	}

	unsaved := uc.accountRepo.Unsaved()
	accounts := uc.accountRepo.List()
	records := make([]AccountRecord, len(accounts))
	for i, a := range accounts {
		records[i] = NewAccountRecord(a)
	}

	if err := uc.gateway.SaveAccounts(ctx, records); err != nil {
		errs = append(errs, err)
	} else {
		numbers := make([]string, len(unsaved))
		for i, a := range unsaved {
			numbers[i] = a.Number()
		}
		uc.accountRepo.MarkSaved(numbers)
		result.AccountsSaved = len(records)
		result.NewAccounts = len(unsaved)
	}

	if len(errs) > 0 {
		return result, fmt.Errorf("flush: %w", errors.Join(errs...))
	}

	uc.logger.Info().
		Int("entries_written", result.EntriesWritten).
		Int("accounts_saved", result.AccountsSaved).
		Int("new_accounts", result.NewAccounts).
		Msg("state flushed")

	return result, nil
}
