package types

import (
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// LedgerTransactionType is the kind of financial event appended to a
// representative's ledger
type LedgerTransactionType string

const (
	// LedgerTransactionInvoice is a debit: it increases the amount the
	// representative owes
	LedgerTransactionInvoice LedgerTransactionType = "invoice"
	// LedgerTransactionPayment is a credit: it decreases the amount the
	// representative owes
	LedgerTransactionPayment LedgerTransactionType = "payment"
)

func (t LedgerTransactionType) String() string {
	return string(t)
}

func (t LedgerTransactionType) Validate() error {
	allowed := []LedgerTransactionType{
		LedgerTransactionInvoice,
		LedgerTransactionPayment,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid ledger transaction type").
			WithHint("Please provide a valid ledger transaction type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// BalanceStatus classifies a representative's current balance. It is derived
// from the sign of the running balance, never stored.
type BalanceStatus string

const (
	// BalanceStatusDebtor means the representative owes the operator
	BalanceStatusDebtor BalanceStatus = "debtor"
	// BalanceStatusCreditor means the operator owes the representative
	BalanceStatusCreditor BalanceStatus = "creditor"
	// BalanceStatusSettled means the balance is exactly zero
	BalanceStatusSettled BalanceStatus = "settled"
)

// BalanceStatusOf derives the classification from a running balance.
// Sign convention: invoices post positive, payments post negative.
func BalanceStatusOf(balance decimal.Decimal) BalanceStatus {
	switch {
	case balance.IsPositive():
		return BalanceStatusDebtor
	case balance.IsNegative():
		return BalanceStatusCreditor
	default:
		return BalanceStatusSettled
	}
}
