package invoice

import (
	"testing"
	"time"

	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInvoice() *Invoice {
	return &Invoice{
		ID:               "inv_1",
		InvoiceNumber:    "INV-2025-1",
		RepresentativeID: "rep_1",
		InvoiceStatus:    types.InvoiceStatusPending,
		AmountDue:        decimal.NewFromInt(15000),
		IssueDate:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		LineItems: []*LineItem{
			{
				Description:      "Limited subscription - 3 month volume (GB)",
				Quantity:         decimal.NewFromInt(5),
				UnitPrice:        decimal.NewFromInt(3000),
				Amount:           decimal.NewFromInt(15000),
				SubscriptionType: types.SubscriptionTypeLimited,
				DurationMonths:   3,
			},
		},
	}
}

func TestInvoiceValidate(t *testing.T) {
	assert.NoError(t, validInvoice().Validate())
}

func TestInvoiceValidateAmountMustReconcile(t *testing.T) {
	inv := validInvoice()
	inv.AmountDue = decimal.NewFromInt(14999)

	err := inv.Validate()
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestInvoiceValidateLineItemArithmetic(t *testing.T) {
	inv := validInvoice()
	inv.LineItems[0].Amount = decimal.NewFromInt(14000)
	inv.AmountDue = decimal.NewFromInt(14000)

	// quantity * unit_price no longer matches the item amount
	err := inv.Validate()
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestInvoiceValidateDueDateNotBeforeIssueDate(t *testing.T) {
	inv := validInvoice()
	early := inv.IssueDate.Add(-24 * time.Hour)
	inv.DueDate = &early

	assert.Error(t, inv.Validate())
}

func TestInvoiceSetStatus(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending to paid records payment time", func(t *testing.T) {
		inv := validInvoice()
		require.NoError(t, inv.SetStatus(types.InvoiceStatusPaid, now))
		assert.Equal(t, types.InvoiceStatusPaid, inv.InvoiceStatus)
		require.NotNil(t, inv.PaidAt)
		assert.Equal(t, now, *inv.PaidAt)
	})

	t.Run("reapplying the current status is a no-op", func(t *testing.T) {
		inv := validInvoice()
		require.NoError(t, inv.SetStatus(types.InvoiceStatusPending, now))
		assert.Equal(t, types.InvoiceStatusPending, inv.InvoiceStatus)
		assert.Nil(t, inv.PaidAt)
	})

	t.Run("paid is terminal", func(t *testing.T) {
		inv := validInvoice()
		require.NoError(t, inv.SetStatus(types.InvoiceStatusPaid, now))

		err := inv.SetStatus(types.InvoiceStatusCancelled, now)
		require.Error(t, err)
		assert.True(t, ierr.IsInvalidOperation(err))
	})

	t.Run("overdue can still be paid", func(t *testing.T) {
		inv := validInvoice()
		require.NoError(t, inv.SetStatus(types.InvoiceStatusOverdue, now))
		require.NoError(t, inv.SetStatus(types.InvoiceStatusPaid, now))
		assert.Equal(t, types.InvoiceStatusPaid, inv.InvoiceStatus)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		inv := validInvoice()
		assert.Error(t, inv.SetStatus(types.InvoiceStatus("refunded"), now))
	})
}
