package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind labels the direction and cause of a balance change.
type EntryKind string

const (
	EntryKindDeposit     EntryKind = "Deposit"
	EntryKindWithdrawal  EntryKind = "Withdrawal"
	EntryKindTransferOut EntryKind = "Transfer Out"
	EntryKindTransferIn  EntryKind = "Transfer In"
	EntryKindReversal    EntryKind = "Reversal"
	EntryKindFee         EntryKind = "Fee"
)

var entryKinds = map[string]EntryKind{
	"deposit":      EntryKindDeposit,
	"withdrawal":   EntryKindWithdrawal,
	"transfer out": EntryKindTransferOut,
	"transfer in":  EntryKindTransferIn,
	"reversal":     EntryKindReversal,
	"fee":          EntryKindFee,
}

var kindSeparators = strings.NewReplacer("_", " ", "-", " ")

// ParseEntryKind parses a kind case-insensitively. Underscores and hyphens
// may stand in for the space of two-word kinds.
func ParseEntryKind(s string) (EntryKind, error) {
	kind, ok := entryKinds[kindSeparators.Replace(strings.ToLower(strings.TrimSpace(s)))]
	if !ok {
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidEntry, s)
	}
	return kind, nil
}

// IsCredit reports whether the kind increases a balance.
func (k EntryKind) IsCredit() bool {
	switch k {
	case EntryKindDeposit, EntryKindTransferIn, EntryKindReversal:
		return true
	default:
		return false
	}
}

// Entry is an immutable record of one committed balance change.
// Amount is the magnitude moved; Kind tells the direction.
type Entry struct {
	CreatedAt        time.Time
	ID               string
	Seq              int64
	AccountNumber    string
	Kind             EntryKind
	Amount           decimal.Decimal
	ResultingBalance decimal.Decimal
}

// SignedAmount returns Amount with the sign of its effect on the balance.
func (e Entry) SignedAmount() decimal.Decimal {
	if e.Kind.IsCredit() {
		return e.Amount
	}
	return e.Amount.Neg()
}

// Validate rejects entries that must never reach the ledger.
func (e Entry) Validate() error {
	if e.ID == "" || e.Seq <= 0 {
		return fmt.Errorf("%w: missing identifier", ErrInvalidEntry)
	}
	if e.AccountNumber == "" {
		return fmt.Errorf("%w: missing account number", ErrInvalidEntry)
	}
	if _, err := ParseEntryKind(string(e.Kind)); err != nil {
		return err
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidEntry)
	}
	if e.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidEntry)
	}
	return nil
}

// EntryID formats a ledger sequence number as an entry identifier.
func EntryID(seq int64) string {
	return fmt.Sprintf("TXN%03d", seq)
}

// ParseEntryID extracts the sequence number from an entry identifier.
func ParseEntryID(id string) (int64, error) {
	var seq int64
	if _, err := fmt.Sscanf(id, "TXN%d", &seq); err != nil || seq <= 0 {
		return 0, fmt.Errorf("%w: bad identifier %q", ErrInvalidEntry, id)
	}
	return seq, nil
}

// SortEntriesByTimeDesc returns a copy of entries, newest first. Entries with
// equal timestamps keep the higher sequence number first.
func SortEntriesByTimeDesc(entries []Entry) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.Seq, a.Seq)
	})
	return out
}

// SortEntriesByAmount returns a copy of entries by ascending amount.
func SortEntriesByAmount(entries []Entry) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		if c := a.Amount.Cmp(b.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})
	return out
}

// FilterEntriesByKind returns the entries of the given kind.
func FilterEntriesByKind(entries []Entry, kind EntryKind) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
