package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// TransferRepository keeps transfer outcomes in memory.
type TransferRepository struct {
	mu        sync.RWMutex
	transfers map[string]*domain.Transfer
	order     []string
}

// NewTransferRepository creates an empty TransferRepository.
func NewTransferRepository() *TransferRepository {
	return &TransferRepository{transfers: make(map[string]*domain.Transfer)}
}

// Create stores a copy of transfer.
func (r *TransferRepository) Create(ctx context.Context, transfer *domain.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.transfers[transfer.ID]; ok {
		return fmt.Errorf("transfer %s already stored", transfer.ID)
	}

	stored := *transfer
	r.transfers[transfer.ID] = &stored
	r.order = append(r.order, transfer.ID)
	return nil
}

// GetByID retrieves a transfer by ID.
func (r *TransferRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transfers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransferNotFound, id)
	}
	out := *t
	return &out, nil
}

// ListByAccount returns transfers from or to the account, oldest first.
func (r *TransferRepository) ListByAccount(ctx context.Context, number string) ([]*domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Transfer
	for _, id := range r.order {
		t := r.transfers[id]
		if t.FromAccountID == number || t.ToAccountID == number {
			c := *t
			out = append(out, &c)
		}
	}
	return out, nil
}
