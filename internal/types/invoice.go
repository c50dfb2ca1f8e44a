package types

import (
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus represents the current state of an invoice in its lifecycle.
// Invoices are created pending; every later transition is driven by external
// collaborators (payment matching, due-date sweeps, manual action).
type InvoiceStatus string

const (
	// InvoiceStatusPending indicates the invoice is issued and awaiting payment
	InvoiceStatusPending InvoiceStatus = "pending"
	// InvoiceStatusPaid indicates a payment has been matched against the invoice
	InvoiceStatusPaid InvoiceStatus = "paid"
	// InvoiceStatusOverdue indicates the due date elapsed while unpaid
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	// InvoiceStatusCancelled indicates the invoice was manually voided
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusPending,
		InvoiceStatusPaid,
		InvoiceStatusOverdue,
		InvoiceStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Please provide a valid invoice status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CanTransitionTo reports whether the status machine allows moving to target.
// pending is the only non-terminal state; overdue may still be paid or
// cancelled afterwards.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	if s == target {
		// status-change notifications must be accepted idempotently
		return true
	}
	switch s {
	case InvoiceStatusPending:
		return lo.Contains([]InvoiceStatus{
			InvoiceStatusPaid,
			InvoiceStatusOverdue,
			InvoiceStatusCancelled,
		}, target)
	case InvoiceStatusOverdue:
		return lo.Contains([]InvoiceStatus{
			InvoiceStatusPaid,
			InvoiceStatusCancelled,
		}, target)
	default:
		return false
	}
}
