package dto

import (
	"context"

	"github.com/Iscgrou/repbill/internal/domain/representative"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/Iscgrou/repbill/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateRepresentativeRequest registers a new reseller account
type CreateRepresentativeRequest struct {
	AdminUsername string         `json:"admin_username" binding:"required"`
	FullName      string         `json:"full_name,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	TelegramID    string         `json:"telegram_id,omitempty"`
	StoreName     string         `json:"store_name,omitempty"`
	Pricing       PricingProfile `json:"pricing"`
}

// PricingProfile mirrors the domain profile with JSON-friendly fields
type PricingProfile struct {
	LimitedPrices         []decimal.Decimal `json:"limited_prices" binding:"omitempty,len=6"`
	UnlimitedMonthlyPrice decimal.Decimal   `json:"unlimited_monthly_price"`
}

func (p PricingProfile) toDomain() (representative.PricingProfile, error) {
	var profile representative.PricingProfile
	if len(p.LimitedPrices) != 0 && len(p.LimitedPrices) != types.DurationTierCount {
		return profile, ierr.NewError("invalid pricing profile").
			WithHintf("limited_prices must contain exactly %d rates", types.DurationTierCount).
			Mark(ierr.ErrValidation)
	}
	for i, price := range p.LimitedPrices {
		if price.IsNegative() {
			return profile, ierr.NewError("invalid pricing profile").
				WithHint("rates must be non negative").
				Mark(ierr.ErrValidation)
		}
		profile.LimitedPrices[i] = price
	}
	if p.UnlimitedMonthlyPrice.IsNegative() {
		return profile, ierr.NewError("invalid pricing profile").
			WithHint("rates must be non negative").
			Mark(ierr.ErrValidation)
	}
	profile.UnlimitedMonthlyPrice = p.UnlimitedMonthlyPrice
	return profile, nil
}

func (r *CreateRepresentativeRequest) Validate() error {
	if r.AdminUsername == "" {
		return ierr.NewError("admin_username cannot be empty").
			WithHint("Admin username is required").
			Mark(ierr.ErrValidation)
	}
	return validator.ValidateRequest(r)
}

// ToRepresentative converts the request to a domain representative
func (r *CreateRepresentativeRequest) ToRepresentative(ctx context.Context) (*representative.Representative, error) {
	pricing, err := r.Pricing.toDomain()
	if err != nil {
		return nil, err
	}
	return &representative.Representative{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REPRESENTATIVE),
		AdminUsername: r.AdminUsername,
		FullName:      r.FullName,
		Phone:         r.Phone,
		TelegramID:    r.TelegramID,
		StoreName:     r.StoreName,
		Pricing:       pricing,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}, nil
}

// UpdatePricingRequest replaces a representative's pricing profile
type UpdatePricingRequest struct {
	Pricing PricingProfile `json:"pricing" binding:"required"`
}

func (r *UpdatePricingRequest) Validate() error {
	_, err := r.Pricing.toDomain()
	return err
}

func (r *UpdatePricingRequest) ToProfile() (representative.PricingProfile, error) {
	return r.Pricing.toDomain()
}

// RepresentativeResponse represents a representative in responses
type RepresentativeResponse struct {
	representative.Representative
}

func NewRepresentativeResponse(rep *representative.Representative) *RepresentativeResponse {
	if rep == nil {
		return nil
	}
	return &RepresentativeResponse{Representative: *rep}
}

// ListRepresentativesResponse represents the response for listing representatives
type ListRepresentativesResponse struct {
	Items []*RepresentativeResponse `json:"items"`
	Total int                       `json:"total"`
}
