package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// TransferUseCase moves money between two accounts. The legs run one after
// the other and no account lock is held across them, so opposite transfers
// between the same pair cannot deadlock. A failed credit leg is undone by a
// Reversal entry on the source account.
type TransferUseCase struct {
	accountRepo  AccountRepository
	transferRepo TransferRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewTransferUseCase creates a new TransferUseCase. m may be nil.
func NewTransferUseCase(
	accountRepo AccountRepository,
	transferRepo TransferRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		idGen:        idGen,
		metrics:      m,
		logger:       logger.With().Str("component", "transfers").Logger(),
	}
}

// CreateTransferInput represents input for creating a transfer.
type CreateTransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

// CreateTransfer moves input.Amount from the source to the destination.
//
// If the debit fails nothing has changed and its error is returned as is.
// If the credit fails the debit is reversed and the returned error wraps both
// domain.ErrTransferFailed and the credit's cause. A reversal that cannot be
// recorded leaves money unaccounted for; CreateTransfer then panics with an
// error wrapping domain.ErrInvariantViolation.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, input CreateTransferInput) (*domain.Transfer, error) {
	start := time.Now()

	transfer := &domain.Transfer{
		FromAccountID: strings.ToUpper(strings.TrimSpace(input.FromAccountID)),
		ToAccountID:   strings.ToUpper(strings.TrimSpace(input.ToAccountID)),
		Amount:        input.Amount,
	}
	if err := transfer.Validate(); err != nil {
		uc.fail(err)
		return nil, err
	}

	from, err := uc.accountRepo.FindAccount(transfer.FromAccountID)
	if err != nil {
		uc.fail(err)
		return nil, err
	}

	to, err := uc.accountRepo.FindAccount(transfer.ToAccountID)
	if err != nil {
		uc.fail(err)
		return nil, err
	}

	transfer.ID = uc.idGen.Generate()
	transfer.CreatedAt = start.UTC()

	debit, err := from.WithdrawWithKind(transfer.Amount, domain.EntryKindTransferOut)
	if err != nil {
		uc.fail(err)
		return nil, err
	}
	transfer.Debit = debit

	credit, err := to.DepositWithKind(transfer.Amount, domain.EntryKindTransferIn)
	if err != nil {
		return nil, uc.compensate(ctx, transfer, from, err)
	}
	transfer.Credit = &credit
	transfer.Status = domain.TransferStatusCompleted

	uc.save(ctx, transfer)

	if uc.metrics != nil {
		uc.metrics.TransfersCompleted.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		uc.metrics.TransferAmount.Observe(transfer.Amount.InexactFloat64())
	}

	uc.logger.Info().
		Str("transfer_id", transfer.ID).
		Str("from", transfer.FromAccountID).
		Str("to", transfer.ToAccountID).
		Str("amount", domain.FormatMoney(transfer.Amount)).
		Msg("transfer completed")

	return transfer, nil
}

// compensate returns the debited amount to the source account and builds the
// error for the failed credit leg.
func (uc *TransferUseCase) compensate(ctx context.Context, transfer *domain.Transfer, from *domain.Account, cause error) error {
	reversal, err := from.DepositWithKind(transfer.Amount, domain.EntryKindReversal)
	if err != nil {
		violation := fmt.Errorf("%w: transfer %s: reversal of %s on %s failed: %w (credit leg: %v)",
			domain.ErrInvariantViolation, transfer.ID, domain.FormatMoney(transfer.Amount), transfer.FromAccountID, err, cause)
		uc.logger.Error().Err(violation).Str("transfer_id", transfer.ID).Msg("compensation failed")
		panic(violation)
	}

	transfer.Reversal = &reversal
	transfer.Status = domain.TransferStatusCompensated
	uc.save(ctx, transfer)

	if uc.metrics != nil {
		uc.metrics.TransfersCompensated.Inc()
		uc.metrics.TransferErrors.WithLabelValues(errorType(cause)).Inc()
	}

	uc.logger.Warn().
		Err(cause).
		Str("transfer_id", transfer.ID).
		Str("from", transfer.FromAccountID).
		Str("to", transfer.ToAccountID).
		Msg("transfer compensated")

	return fmt.Errorf("%w: %w", domain.ErrTransferFailed, cause)
}

func (uc *TransferUseCase) save(ctx context.Context, transfer *domain.Transfer) {
	if err := uc.transferRepo.Create(ctx, transfer); err != nil {
		uc.logger.Error().Err(err).Str("transfer_id", transfer.ID).Msg("failed to store transfer")
	}
}

func (uc *TransferUseCase) fail(err error) {
	if uc.metrics != nil {
		uc.metrics.TransferErrors.WithLabelValues(errorType(err)).Inc()
	}
}

// GetTransfer retrieves a transfer by ID.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, id string) (*domain.Transfer, error) {
	return uc.transferRepo.GetByID(ctx, id)
}

// ListTransfersByAccount returns the transfers touching an account, oldest first.
func (uc *TransferUseCase) ListTransfersByAccount(ctx context.Context, number string) ([]*domain.Transfer, error) {
	account, err := uc.accountRepo.FindAccount(number)
	if err != nil {
		return nil, err
	}
	return uc.transferRepo.ListByAccount(ctx, account.Number())
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrSameAccount):
		return "same_account"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrAccountClosed):
		return "account_closed"
	default:
		return outcome(err)
	}
}
