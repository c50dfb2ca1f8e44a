package invoice

import (
	"context"

	"github.com/Iscgrou/repbill/internal/types"
)

// Repository defines the interface for invoice persistence operations
type Repository interface {
	// CreateWithLineItems creates a new invoice together with its line items
	CreateWithLineItems(ctx context.Context, inv *Invoice) error

	// Get retrieves an invoice by ID including its line items
	Get(ctx context.Context, id string) (*Invoice, error)

	// GetByNumber retrieves an invoice by its invoice number
	GetByNumber(ctx context.Context, number string) (*Invoice, error)

	// NumberExists reports whether an invoice number is already taken
	NumberExists(ctx context.Context, number string) (bool, error)

	// ListByRepresentative retrieves all invoices for a representative
	ListByRepresentative(ctx context.Context, representativeID string) ([]*Invoice, error)

	// UpdateStatus applies a lifecycle status change to an invoice
	UpdateStatus(ctx context.Context, id string, status types.InvoiceStatus) error
}
