package ledger

import (
	"time"

	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/shopspring/decimal"
)

// Entry is one immutable financial event on a representative's ledger.
// Sign convention: invoice debits post positive, payment credits post
// negative. RunningBalance is the balance after this entry was applied.
type Entry struct {
	ID               string                      `db:"id" json:"id"`
	RepresentativeID string                      `db:"representative_id" json:"representative_id"`
	Type             types.LedgerTransactionType `db:"type" json:"type"`
	Amount           decimal.Decimal             `db:"amount" json:"amount"`
	RunningBalance   decimal.Decimal             `db:"running_balance" json:"running_balance"`
	TransactionDate  time.Time                   `db:"transaction_date" json:"transaction_date"`
	ReferenceNumber  *string                     `db:"reference_number" json:"reference_number,omitempty"`
	Description      string                      `db:"description" json:"description,omitempty"`
	types.BaseModel
}

func (e *Entry) TableName() string {
	return "ledger_entries"
}

func (e *Entry) Validate() error {
	if e.RepresentativeID == "" {
		return ierr.NewError("representative_id is required").
			WithHint("Ledger entry must belong to a representative").
			Mark(ierr.ErrValidation)
	}

	if err := e.Type.Validate(); err != nil {
		return err
	}

	switch e.Type {
	case types.LedgerTransactionInvoice:
		if !e.Amount.IsPositive() {
			return ierr.NewError("invoice entry must have a positive amount").
				WithHint("Invoice debits post positive amounts").
				Mark(ierr.ErrValidation)
		}
	case types.LedgerTransactionPayment:
		if !e.Amount.IsNegative() {
			return ierr.NewError("payment entry must have a negative amount").
				WithHint("Payment credits post negative amounts").
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}

// Snapshot is the read model exposed to balance displays and statement
// export. CurrentBalance is the running balance of the most recent entry.
type Snapshot struct {
	RepresentativeID string              `json:"representative_id"`
	CurrentBalance   decimal.Decimal     `json:"current_balance"`
	BalanceStatus    types.BalanceStatus `json:"balance_status"`
	Transactions     []*Entry            `json:"transactions"`
}

// VerifyChain recomputes the running-balance chain over entries ordered by
// insertion. It is an audit operation, not part of the posting hot path.
func VerifyChain(entries []*Entry) error {
	previous := decimal.Zero
	for i, e := range entries {
		if !e.RunningBalance.Equal(previous.Add(e.Amount)) {
			return ierr.NewError("running balance chain broken").
				WithHintf("entry %d does not continue the running balance of its predecessor", i+1).
				WithReportableDetails(map[string]any{
					"entry_id":         e.ID,
					"expected_balance": previous.Add(e.Amount),
					"actual_balance":   e.RunningBalance,
				}).
				Mark(ierr.ErrLedgerIntegrity)
		}
		previous = e.RunningBalance
	}
	return nil
}
