package dto

import (
	"github.com/Iscgrou/repbill/internal/domain/ledger"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/shopspring/decimal"
)

// PostPaymentRequest records a captured payment against a representative's
// ledger. Amount is the positive amount paid; the ledger applies the credit
// sign convention itself.
type PostPaymentRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Description     string          `json:"description,omitempty"`
}

func (r *PostPaymentRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return ierr.NewError("invalid payment amount").
			WithHint("Payment amount must be positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// LedgerEntryResponse represents one ledger entry in responses
type LedgerEntryResponse struct {
	ledger.Entry
}

// LedgerSnapshotResponse is the balance-display read model
type LedgerSnapshotResponse struct {
	ledger.Snapshot
}

func NewLedgerSnapshotResponse(snapshot *ledger.Snapshot) *LedgerSnapshotResponse {
	if snapshot == nil {
		return nil
	}
	return &LedgerSnapshotResponse{Snapshot: *snapshot}
}
