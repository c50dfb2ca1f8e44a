package service

import (
	"context"
	"time"

	"github.com/Iscgrou/repbill/internal/api/dto"
	"github.com/Iscgrou/repbill/internal/types"
)

// InvoiceService exposes invoice reads and the status-change surface used
// by external payment collaborators
type InvoiceService interface {
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListByRepresentative(ctx context.Context, representativeID string) (*dto.ListInvoicesResponse, error)

	// UpdateStatus applies a status-change notification. Re-applying the
	// current status succeeds without effect so notifications can be
	// retried safely.
	UpdateStatus(ctx context.Context, id string, status types.InvoiceStatus) (*dto.InvoiceResponse, error)
}

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{ServiceParams: params}
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv), nil
}

func (s *invoiceService) ListByRepresentative(ctx context.Context, representativeID string) (*dto.ListInvoicesResponse, error) {
	invoices, err := s.InvoiceRepo.ListByRepresentative(ctx, representativeID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = dto.NewInvoiceResponse(inv)
	}
	return &dto.ListInvoicesResponse{Items: items, Total: len(items)}, nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, id string, status types.InvoiceStatus) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current := inv.InvoiceStatus
	if err := inv.SetStatus(status, time.Now().UTC()); err != nil {
		return nil, err
	}

	if inv.InvoiceStatus != current {
		if err := s.InvoiceRepo.UpdateStatus(ctx, id, inv.InvoiceStatus); err != nil {
			return nil, err
		}
		s.Logger.Infow("invoice status updated",
			"invoice_id", id,
			"from", current,
			"to", inv.InvoiceStatus,
		)
	}

	return dto.NewInvoiceResponse(inv), nil
}
