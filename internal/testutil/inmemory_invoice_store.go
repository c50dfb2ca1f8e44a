package testutil

import (
	"context"
	"sync"

	"github.com/Iscgrou/repbill/internal/domain/invoice"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/types"
)

// InMemoryInvoiceStore provides an in-memory implementation of the invoice
// repository for testing. Invoice numbers are unique across the store, same
// as the database constraint.
type InMemoryInvoiceStore struct {
	mu       sync.RWMutex
	invoices map[string]*invoice.Invoice
	byNumber map[string]string
	order    []string
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		invoices: make(map[string]*invoice.Invoice),
		byNumber: make(map[string]string),
	}
}

func (s *InMemoryInvoiceStore) CreateWithLineItems(ctx context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.invoices[inv.ID]; exists {
		return ierr.NewError("invoice already exists").
			WithHint("An invoice with this ID already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	if _, exists := s.byNumber[inv.InvoiceNumber]; exists {
		return ierr.NewError("duplicate invoice number").
			WithHint("An invoice with this number already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *inv
	s.invoices[inv.ID] = &copied
	s.byNumber[inv.InvoiceNumber] = inv.ID
	s.order = append(s.order, inv.ID)
	return nil
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, exists := s.invoices[id]
	if !exists {
		return nil, ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			Mark(ierr.ErrNotFound)
	}
	copied := *inv
	return &copied, nil
}

func (s *InMemoryInvoiceStore) GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	s.mu.RLock()
	id, exists := s.byNumber[number]
	s.mu.RUnlock()

	if !exists {
		return nil, ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			Mark(ierr.ErrNotFound)
	}
	return s.Get(ctx, id)
}

func (s *InMemoryInvoiceStore) NumberExists(ctx context.Context, number string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.byNumber[number]
	return exists, nil
}

func (s *InMemoryInvoiceStore) ListByRepresentative(ctx context.Context, representativeID string) ([]*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*invoice.Invoice
	for _, id := range s.order {
		inv := s.invoices[id]
		if inv.RepresentativeID == representativeID {
			copied := *inv
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *InMemoryInvoiceStore) UpdateStatus(ctx context.Context, id string, status types.InvoiceStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, exists := s.invoices[id]
	if !exists {
		return ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			Mark(ierr.ErrNotFound)
	}
	inv.InvoiceStatus = status
	return nil
}

// Clear removes all invoices from the store
func (s *InMemoryInvoiceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = make(map[string]*invoice.Invoice)
	s.byNumber = make(map[string]string)
	s.order = nil
}
