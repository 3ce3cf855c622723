package memory

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/iho/gobank/internal/domain"
)

// EntryRecorder is notified of every entry recorded by the ledger.
// Implementations must not block.
type EntryRecorder interface {
	RecordEntry(entry domain.Entry)
}

// LedgerRepository is the process-wide append-only entry store. It implements
// domain.Journal. Its lock is independent of every account lock.
type LedgerRepository struct {
	mu        sync.RWMutex
	entries   []domain.Entry
	byAccount map[string][]int
	ids       map[string]struct{}
	unflushed map[string]struct{}
	seq       int64

	recorder EntryRecorder
	now      func() time.Time
}

// NewLedgerRepository creates an empty ledger. recorder may be nil.
func NewLedgerRepository(recorder EntryRecorder) *LedgerRepository {
	return &LedgerRepository{
		byAccount: make(map[string][]int),
		ids:       make(map[string]struct{}),
		unflushed: make(map[string]struct{}),
		recorder:  recorder,
		now:       time.Now,
	}
}

// Record assigns the next sequence number, identifier and timestamp to entry,
// appends it and returns the stored copy. The entry is pending persistence
// from the moment it becomes visible.
func (r *LedgerRepository) Record(entry domain.Entry) (domain.Entry, error) {
	r.mu.Lock()
	r.seq++
	entry.Seq = r.seq
	entry.ID = domain.EntryID(entry.Seq)
	entry.CreatedAt = r.now()

	if err := entry.Validate(); err != nil {
		r.seq--
		r.mu.Unlock()
		return domain.Entry{}, err
	}

	r.appendLocked(entry)
	r.unflushed[entry.ID] = struct{}{}
	r.mu.Unlock()

	if r.recorder != nil {
		r.recorder.RecordEntry(entry)
	}

	return entry, nil
}

// Append adds a previously persisted entry. Entries with an identifier the
// ledger already holds are rejected with domain.ErrInvalidEntry. The sequence
// advances past the entry's identifier so new entries never reuse it.
func (r *LedgerRepository) Append(entry domain.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[entry.ID]; ok {
		return fmt.Errorf("%w: duplicate identifier %s", domain.ErrInvalidEntry, entry.ID)
	}

	r.appendLocked(entry)
	if entry.Seq > r.seq {
		r.seq = entry.Seq
	}

	return nil
}

func (r *LedgerRepository) appendLocked(entry domain.Entry) {
	r.entries = append(r.entries, entry)
	r.byAccount[entry.AccountNumber] = append(r.byAccount[entry.AccountNumber], len(r.entries)-1)
	r.ids[entry.ID] = struct{}{}
}

// All returns a snapshot of every entry in insertion order.
func (r *LedgerRepository) All() []domain.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}

// ByAccount returns a snapshot of the account's entries in insertion order.
func (r *LedgerRepository) ByAccount(number string) []domain.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.byAccount[number]
	out := make([]domain.Entry, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.entries[i])
	}
	return out
}

// Last returns the most recently appended entry for the account.
func (r *LedgerRepository) Last(number string) (domain.Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.byAccount[number]
	if len(idx) == 0 {
		return domain.Entry{}, false
	}
	return r.entries[idx[len(idx)-1]], true
}

// Count returns the number of entries.
func (r *LedgerRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Unflushed returns the entries not yet confirmed persisted, in sequence order.
func (r *LedgerRepository) Unflushed() []domain.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Entry, 0, len(r.unflushed))
	for _, e := range r.entries {
		if _, ok := r.unflushed[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}

// MarkFlushed records that the given entries are persisted.
func (r *LedgerRepository) MarkFlushed(ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.unflushed, id)
	}
}

// SortedByTimeDesc returns a newest-first snapshot of the whole ledger.
func (r *LedgerRepository) SortedByTimeDesc() []domain.Entry {
	return domain.SortEntriesByTimeDesc(r.All())
}

// SortedByAmount returns a snapshot of the whole ledger by ascending amount.
func (r *LedgerRepository) SortedByAmount() []domain.Entry {
	return domain.SortEntriesByAmount(r.All())
}
