package service

import (
	"context"

	"github.com/Iscgrou/repbill/internal/api/dto"
)

// RepresentativeService manages the reseller accounts that usage reports
// resolve against
type RepresentativeService interface {
	CreateRepresentative(ctx context.Context, req *dto.CreateRepresentativeRequest) (*dto.RepresentativeResponse, error)
	GetRepresentative(ctx context.Context, id string) (*dto.RepresentativeResponse, error)
	ListRepresentatives(ctx context.Context) (*dto.ListRepresentativesResponse, error)
	UpdatePricing(ctx context.Context, id string, req *dto.UpdatePricingRequest) (*dto.RepresentativeResponse, error)
}

type representativeService struct {
	ServiceParams
}

func NewRepresentativeService(params ServiceParams) RepresentativeService {
	return &representativeService{ServiceParams: params}
}

func (s *representativeService) CreateRepresentative(ctx context.Context, req *dto.CreateRepresentativeRequest) (*dto.RepresentativeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rep, err := req.ToRepresentative(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.RepresentativeRepo.Create(ctx, rep); err != nil {
		return nil, err
	}

	s.Logger.Infow("representative created",
		"representative_id", rep.ID,
		"admin_username", rep.AdminUsername,
	)
	return dto.NewRepresentativeResponse(rep), nil
}

func (s *representativeService) GetRepresentative(ctx context.Context, id string) (*dto.RepresentativeResponse, error) {
	rep, err := s.RepresentativeRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRepresentativeResponse(rep), nil
}

func (s *representativeService) ListRepresentatives(ctx context.Context) (*dto.ListRepresentativesResponse, error) {
	reps, err := s.RepresentativeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.RepresentativeResponse, len(reps))
	for i, rep := range reps {
		items[i] = dto.NewRepresentativeResponse(rep)
	}
	return &dto.ListRepresentativesResponse{Items: items, Total: len(items)}, nil
}

func (s *representativeService) UpdatePricing(ctx context.Context, id string, req *dto.UpdatePricingRequest) (*dto.RepresentativeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile, err := req.ToProfile()
	if err != nil {
		return nil, err
	}

	if err := s.RepresentativeRepo.UpdatePricingProfile(ctx, id, &profile); err != nil {
		return nil, err
	}

	rep, err := s.RepresentativeRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("pricing profile updated", "representative_id", id)
	return dto.NewRepresentativeResponse(rep), nil
}
