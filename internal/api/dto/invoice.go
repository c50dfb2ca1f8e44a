package dto

import (
	"github.com/Iscgrou/repbill/internal/domain/invoice"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/types"
)

// InvoiceResponse represents an invoice in responses
type InvoiceResponse struct {
	invoice.Invoice
}

func NewInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &InvoiceResponse{Invoice: *inv}
}

// ListInvoicesResponse represents the response for listing invoices
type ListInvoicesResponse struct {
	Items []*InvoiceResponse `json:"items"`
	Total int                `json:"total"`
}

// UpdateInvoiceStatusRequest represents a lifecycle status change pushed by
// an external payment collaborator
type UpdateInvoiceStatusRequest struct {
	InvoiceStatus types.InvoiceStatus `json:"invoice_status" binding:"required"`
}

func (r *UpdateInvoiceStatusRequest) Validate() error {
	if r.InvoiceStatus == "" {
		return ierr.NewError("invoice_status cannot be empty").
			WithHint("Invoice status cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return r.InvoiceStatus.Validate()
}
