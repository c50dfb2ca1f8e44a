package testutil

import (
	"context"
	"sync"

	"github.com/Iscgrou/repbill/internal/domain/ledger"
	ierr "github.com/Iscgrou/repbill/internal/errors"
)

// InMemoryLedgerStore provides an in-memory implementation of the ledger
// repository for testing. Entries are append-only; the store verifies the
// running-balance chain on every append, same as the database layer.
type InMemoryLedgerStore struct {
	mu      sync.RWMutex
	entries map[string][]*ledger.Entry
}

func NewInMemoryLedgerStore() *InMemoryLedgerStore {
	return &InMemoryLedgerStore{
		entries: make(map[string][]*ledger.Entry),
	}
}

func (s *InMemoryLedgerStore) AppendEntry(ctx context.Context, entry *ledger.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chain := s.entries[entry.RepresentativeID]

	expected := entry.Amount
	if n := len(chain); n > 0 {
		expected = chain[n-1].RunningBalance.Add(entry.Amount)
	}
	if !entry.RunningBalance.Equal(expected) {
		return ierr.NewError("running balance chain broken").
			WithHint("Ledger running balance does not extend the previous entry").
			Mark(ierr.ErrLedgerIntegrity)
	}

	copied := *entry
	s.entries[entry.RepresentativeID] = append(chain, &copied)
	return nil
}

func (s *InMemoryLedgerStore) GetLastEntry(ctx context.Context, representativeID string) (*ledger.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain := s.entries[representativeID]
	if len(chain) == 0 {
		return nil, ierr.NewError("ledger is empty").
			WithHint("No ledger entries found").
			Mark(ierr.ErrNotFound)
	}
	copied := *chain[len(chain)-1]
	return &copied, nil
}

func (s *InMemoryLedgerStore) ListByRepresentative(ctx context.Context, representativeID string) ([]*ledger.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain := s.entries[representativeID]
	result := make([]*ledger.Entry, len(chain))
	for i, entry := range chain {
		copied := *entry
		result[i] = &copied
	}
	return result, nil
}

// Corrupt overwrites the running balance of the entry at idx. Test helper
// for exercising integrity verification; production code has no equivalent.
func (s *InMemoryLedgerStore) Corrupt(representativeID string, idx int, runningBalance string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chain := s.entries[representativeID]
	if idx >= 0 && idx < len(chain) {
		chain[idx].RunningBalance = mustDecimal(runningBalance)
	}
}

// Clear removes all ledger entries from the store
func (s *InMemoryLedgerStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string][]*ledger.Entry)
}
