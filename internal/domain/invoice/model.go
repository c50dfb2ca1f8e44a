package invoice

import (
	"time"

	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents the invoice domain model. Invoices are durable and
// append-only: the pricing/assembly pipeline never mutates one after
// creation, only external payment collaborators move its status.
type Invoice struct {
	ID               string              `db:"id" json:"id"`
	InvoiceNumber    string              `db:"invoice_number" json:"invoice_number"`
	RepresentativeID string              `db:"representative_id" json:"representative_id"`
	InvoiceStatus    types.InvoiceStatus `db:"invoice_status" json:"invoice_status"`
	AmountDue        decimal.Decimal     `db:"amount_due" json:"amount_due"`
	Description      string              `db:"description" json:"description,omitempty"`
	IssueDate        time.Time           `db:"issue_date" json:"issue_date"`
	DueDate          *time.Time          `db:"due_date" json:"due_date,omitempty"`
	PaidAt           *time.Time          `db:"paid_at" json:"paid_at,omitempty"`
	LineItems        []*LineItem         `json:"line_items,omitempty"`
	types.BaseModel
}

func (i *Invoice) TableName() string {
	return "invoices"
}

func (i *Invoice) Validate() error {
	if i.RepresentativeID == "" {
		return ierr.NewError("representative_id is required").
			WithHint("Invoice must belong to a representative").
			Mark(ierr.ErrValidation)
	}

	if i.AmountDue.IsNegative() {
		return ierr.NewError("invalid invoice amount").
			WithHint("amount_due must be non negative").
			Mark(ierr.ErrValidation)
	}

	if err := i.InvoiceStatus.Validate(); err != nil {
		return err
	}

	if i.DueDate != nil && i.DueDate.Before(i.IssueDate) {
		return ierr.NewError("invalid due date").
			WithHint("due_date must not be before issue_date").
			Mark(ierr.ErrValidation)
	}

	// amount_due must reconcile exactly with the line items
	total := decimal.Zero
	for _, item := range i.LineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.Amount)
	}
	if !i.AmountDue.Equal(total) {
		return ierr.NewError("invoice amount does not reconcile").
			WithHint("amount_due must equal the sum of line item amounts").
			WithReportableDetails(map[string]any{
				"amount_due":      i.AmountDue,
				"line_item_total": total,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// SetStatus applies a status-change notification from an external
// collaborator, enforcing the lifecycle state machine. Re-applying the
// current status is a no-op so notifications stay idempotent.
func (i *Invoice) SetStatus(target types.InvoiceStatus, at time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !i.InvoiceStatus.CanTransitionTo(target) {
		return ierr.NewError("invalid invoice status transition").
			WithHintf("cannot move invoice from %s to %s", i.InvoiceStatus, target).
			Mark(ierr.ErrInvalidOperation)
	}
	if i.InvoiceStatus == target {
		return nil
	}

	i.InvoiceStatus = target
	i.UpdatedAt = at.UTC()
	if target == types.InvoiceStatusPaid {
		paidAt := at.UTC()
		i.PaidAt = &paidAt
	}
	return nil
}
