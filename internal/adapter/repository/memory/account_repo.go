package memory

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// AccountRepository is the account registry. It owns account and customer
// membership; accounts themselves guard their own balances.
type AccountRepository struct {
	mu        sync.RWMutex
	accounts  map[string]*domain.Account
	customers map[string]*domain.Customer
	unsaved   map[string]struct{}

	accountSeq  int
	customerSeq int
}

// NewAccountRepository creates an empty registry.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts:  make(map[string]*domain.Account),
		customers: make(map[string]*domain.Customer),
		unsaved:   make(map[string]struct{}),
	}
}

// NextAccountNumber reserves the next ACC-prefixed account number.
func (r *AccountRepository) NextAccountNumber() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accountSeq++
	return fmt.Sprintf("ACC%03d", r.accountSeq)
}

// NextCustomerID reserves the next CUS-prefixed customer identifier.
func (r *AccountRepository) NextCustomerID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customerSeq++
	return fmt.Sprintf("CUS%03d", r.customerSeq)
}

// Add registers a newly opened account. It is reported by Unsaved until
// MarkSaved is called for it.
func (r *AccountRepository) Add(account *domain.Account) error {
	if err := r.add(account); err != nil {
		return err
	}

	r.mu.Lock()
	r.unsaved[account.Number()] = struct{}{}
	r.mu.Unlock()
	return nil
}

// Restore registers an account loaded from storage.
func (r *AccountRepository) Restore(account *domain.Account) error {
	return r.add(account)
}

func (r *AccountRepository) add(account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	number := account.Number()
	if _, ok := r.accounts[number]; ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountExists, number)
	}

	r.accounts[number] = account
	if c := account.Customer(); c != nil {
		r.customers[c.ID] = c
		advance(&r.customerSeq, c.ID, "CUS")
	}
	advance(&r.accountSeq, number, "ACC")

	return nil
}

// advance moves seq past the numeric suffix of id.
func advance(seq *int, id, prefix string) {
	var n int
	if _, err := fmt.Sscanf(strings.TrimPrefix(id, prefix), "%d", &n); err == nil && n > *seq {
		*seq = n
	}
}

// FindAccount returns the account with the given number.
func (r *AccountRepository) FindAccount(number string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[strings.ToUpper(strings.TrimSpace(number))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, number)
	}
	return account, nil
}

// FindCustomer returns the customer with the given identifier.
func (r *AccountRepository) FindCustomer(id string) (*domain.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	return c, ok
}

// List returns every account ordered by account number.
func (r *AccountRepository) List() []*domain.Account {
	r.mu.RLock()
	out := make([]*domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *domain.Account) int {
		return strings.Compare(a.Number(), b.Number())
	})
	return out
}

// Customers returns every customer ordered by identifier.
func (r *AccountRepository) Customers() []*domain.Customer {
	r.mu.RLock()
	out := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *domain.Customer) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Count returns the number of registered accounts.
func (r *AccountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// Unsaved returns accounts added since they were last saved, by number.
func (r *AccountRepository) Unsaved() []*domain.Account {
	r.mu.RLock()
	out := make([]*domain.Account, 0, len(r.unsaved))
	for number := range r.unsaved {
		out = append(out, r.accounts[number])
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *domain.Account) int {
		return strings.Compare(a.Number(), b.Number())
	})
	return out
}

// MarkSaved clears the unsaved flag for the given account numbers.
func (r *AccountRepository) MarkSaved(numbers []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range numbers {
		delete(r.unsaved, n)
	}
}
