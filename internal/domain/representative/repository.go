package representative

import "context"

// Repository defines the interface for representative persistence operations
type Repository interface {
	// Create creates a new representative
	Create(ctx context.Context, rep *Representative) error

	// Get retrieves a representative by ID
	Get(ctx context.Context, id string) (*Representative, error)

	// GetByAdminUsername retrieves a representative by its admin username,
	// the key usage batches are delivered under
	GetByAdminUsername(ctx context.Context, adminUsername string) (*Representative, error)

	// GetPricingProfile retrieves only the pricing profile for a representative
	GetPricingProfile(ctx context.Context, id string) (*PricingProfile, error)

	// UpdatePricingProfile replaces the pricing profile for a representative
	UpdatePricingProfile(ctx context.Context, id string, profile *PricingProfile) error

	// List retrieves all representatives
	List(ctx context.Context) ([]*Representative, error)
}
