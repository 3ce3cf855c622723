package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus is the outcome of a transfer.
type TransferStatus string

const (
	TransferStatusCompleted   TransferStatus = "completed"
	TransferStatusCompensated TransferStatus = "compensated"
)

// Transfer represents a money movement between two accounts and the entries
// it produced. A compensated transfer carries the reversal of its debit.
type Transfer struct {
	CreatedAt     time.Time
	ID            string
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Status        TransferStatus
	Debit         Entry
	Credit        *Entry
	Reversal      *Entry
}

// Validate validates transfer request.
func (t *Transfer) Validate() error {
	if t.FromAccountID == t.ToAccountID {
		return ErrSameAccount
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	return ValidateAmount(t.Amount)
}
