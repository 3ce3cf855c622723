package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountRepository is the account registry.
type AccountRepository interface {
	Add(account *domain.Account) error
	Restore(account *domain.Account) error
	FindAccount(number string) (*domain.Account, error)
	FindCustomer(id string) (*domain.Customer, bool)
	List() []*domain.Account
	Customers() []*domain.Customer
	Count() int
	NextAccountNumber() string
	NextCustomerID() string
	Unsaved() []*domain.Account
	MarkSaved(numbers []string)
}

// LedgerRepository is the shared append-only entry store.
type LedgerRepository interface {
	domain.Journal
	Append(entry domain.Entry) error
	All() []domain.Entry
	ByAccount(number string) []domain.Entry
	Last(number string) (domain.Entry, bool)
	Count() int
	Unflushed() []domain.Entry
	MarkFlushed(ids []string)
}

// TransferRepository keeps the outcome of every transfer attempt that got
// past its first leg.
type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.Transfer) error
	GetByID(ctx context.Context, id string) (*domain.Transfer, error)
	ListByAccount(ctx context.Context, number string) ([]*domain.Transfer, error)
}

// AccountRecord is the persisted form of an account.
type AccountRecord struct {
	Number   string
	Customer domain.Customer
	Kind     domain.AccountKind
	Balance  decimal.Decimal
}

// NewAccountRecord snapshots an account for persistence.
func NewAccountRecord(a *domain.Account) AccountRecord {
	return AccountRecord{
		Number:   a.Number(),
		Customer: *a.Customer(),
		Kind:     a.Kind(),
		Balance:  a.Balance(),
	}
}

// LoadStats summarises a load of persisted entries.
type LoadStats struct {
	Loaded     int
	Duplicates int
	Malformed  int
}

// PersistenceGateway stores accounts and entries durably. FlushEntries must
// tolerate entries it has already written.
type PersistenceGateway interface {
	LoadAccounts(ctx context.Context) ([]AccountRecord, error)
	LoadEntries(ctx context.Context) ([]domain.Entry, LoadStats, error)
	FlushEntries(ctx context.Context, entries []domain.Entry) (int, error)
	SaveAccounts(ctx context.Context, records []AccountRecord) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyPending is the value a claimed key holds until its request finishes.
const IdempotencyPending = "pending"

// IsIdempotencyPending reports whether a stored value is the marker of a
// request that has not finished yet.
func IsIdempotencyPending(value []byte) bool {
	return string(value) == IdempotencyPending
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not. A nil
	// response claims the key with IdempotencyPending.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release removes a key so the request may be retried.
	Release(ctx context.Context, key string) error
}
