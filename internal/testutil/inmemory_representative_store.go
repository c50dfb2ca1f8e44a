package testutil

import (
	"context"
	"sync"

	"github.com/Iscgrou/repbill/internal/domain/representative"
	ierr "github.com/Iscgrou/repbill/internal/errors"
)

// InMemoryRepresentativeStore provides an in-memory implementation of the
// representative repository for testing
type InMemoryRepresentativeStore struct {
	mu              sync.RWMutex
	representatives map[string]*representative.Representative
	byUsername      map[string]string
}

func NewInMemoryRepresentativeStore() *InMemoryRepresentativeStore {
	return &InMemoryRepresentativeStore{
		representatives: make(map[string]*representative.Representative),
		byUsername:      make(map[string]string),
	}
}

func (s *InMemoryRepresentativeStore) Create(ctx context.Context, rep *representative.Representative) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.representatives[rep.ID]; exists {
		return ierr.NewError("representative already exists").
			WithHint("A representative with this ID already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	if _, exists := s.byUsername[rep.AdminUsername]; exists {
		return ierr.NewError("admin username already taken").
			WithHint("A representative with this admin username already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *rep
	s.representatives[rep.ID] = &copied
	s.byUsername[rep.AdminUsername] = rep.ID
	return nil
}

func (s *InMemoryRepresentativeStore) Get(ctx context.Context, id string) (*representative.Representative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rep, exists := s.representatives[id]
	if !exists {
		return nil, ierr.NewError("representative not found").
			WithHint("Representative not found").
			Mark(ierr.ErrNotFound)
	}
	copied := *rep
	return &copied, nil
}

func (s *InMemoryRepresentativeStore) GetByAdminUsername(ctx context.Context, adminUsername string) (*representative.Representative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.byUsername[adminUsername]
	if !exists {
		return nil, ierr.NewError("representative not found").
			WithHint("Representative not found").
			Mark(ierr.ErrNotFound)
	}
	copied := *s.representatives[id]
	return &copied, nil
}

func (s *InMemoryRepresentativeStore) GetPricingProfile(ctx context.Context, id string) (*representative.PricingProfile, error) {
	rep, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &rep.Pricing, nil
}

func (s *InMemoryRepresentativeStore) UpdatePricingProfile(ctx context.Context, id string, profile *representative.PricingProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rep, exists := s.representatives[id]
	if !exists {
		return ierr.NewError("representative not found").
			WithHint("Representative not found").
			Mark(ierr.ErrNotFound)
	}
	rep.Pricing = *profile
	return nil
}

func (s *InMemoryRepresentativeStore) List(ctx context.Context) ([]*representative.Representative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*representative.Representative, 0, len(s.representatives))
	for _, rep := range s.representatives {
		copied := *rep
		result = append(result, &copied)
	}
	return result, nil
}

// Clear removes all representatives from the store
func (s *InMemoryRepresentativeStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.representatives = make(map[string]*representative.Representative)
	s.byUsername = make(map[string]string)
}
