package ledger

import "context"

// Repository defines the interface for ledger persistence operations.
// The ledger is append-only: implementations must not expose any
// update-in-place operation on posted entries.
type Repository interface {
	// AppendEntry durably appends one immutable entry. Appends for the same
	// representative are serialized by the implementation.
	AppendEntry(ctx context.Context, entry *Entry) error

	// GetLastEntry retrieves the most recently appended entry for a
	// representative, or ErrNotFound when the ledger is empty
	GetLastEntry(ctx context.Context, representativeID string) (*Entry, error)

	// ListByRepresentative retrieves all entries for a representative in
	// insertion order
	ListByRepresentative(ctx context.Context, representativeID string) ([]*Entry, error)
}
