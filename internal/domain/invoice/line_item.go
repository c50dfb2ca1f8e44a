package invoice

import (
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem represents a single charge on an invoice
type LineItem struct {
	ID               string                 `db:"id" json:"id"`
	InvoiceID        string                 `db:"invoice_id" json:"invoice_id"`
	Description      string                 `db:"description" json:"description"`
	Quantity         decimal.Decimal        `db:"quantity" json:"quantity"`
	UnitPrice        decimal.Decimal        `db:"unit_price" json:"unit_price"`
	Amount           decimal.Decimal        `db:"amount" json:"amount"`
	SubscriptionType types.SubscriptionType `db:"subscription_type" json:"subscription_type"`
	DurationMonths   int                    `db:"duration_months" json:"duration_months"`
	types.BaseModel
}

func (li *LineItem) TableName() string {
	return "invoice_line_items"
}

// Validate validates the invoice line item
func (li *LineItem) Validate() error {
	if li.Quantity.IsNegative() {
		return ierr.NewError("invoice line item validation failed").
			WithHint("quantity must be non negative").
			Mark(ierr.ErrValidation)
	}

	if li.UnitPrice.IsNegative() {
		return ierr.NewError("invoice line item validation failed").
			WithHint("unit price must be non negative").
			Mark(ierr.ErrValidation)
	}

	if !li.Amount.Equal(li.Quantity.Mul(li.UnitPrice)) {
		return ierr.NewError("invoice line item validation failed").
			WithHint("amount must equal quantity times unit price").
			WithReportableDetails(map[string]any{
				"quantity":   li.Quantity,
				"unit_price": li.UnitPrice,
				"amount":     li.Amount,
			}).
			Mark(ierr.ErrValidation)
	}

	if err := li.SubscriptionType.Validate(); err != nil {
		return err
	}

	if !types.ValidDurationMonths(li.DurationMonths) {
		return ierr.NewError("invoice line item validation failed").
			WithHintf("duration must be between %d and %d months", types.MinDurationMonths, types.MaxDurationMonths).
			Mark(ierr.ErrValidation)
	}

	return nil
}
