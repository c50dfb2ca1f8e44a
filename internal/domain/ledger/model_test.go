package ledger

import (
	"testing"
	"time"

	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, txType types.LedgerTransactionType, amount, balance int64) *Entry {
	return &Entry{
		ID:               id,
		RepresentativeID: "rep_1",
		Type:             txType,
		Amount:           decimal.NewFromInt(amount),
		RunningBalance:   decimal.NewFromInt(balance),
		TransactionDate:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestEntryValidateSignConvention(t *testing.T) {
	t.Run("invoice debits post positive", func(t *testing.T) {
		assert.NoError(t, entry("ltx_1", types.LedgerTransactionInvoice, 15000, 15000).Validate())

		err := entry("ltx_2", types.LedgerTransactionInvoice, -15000, -15000).Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("payment credits post negative", func(t *testing.T) {
		assert.NoError(t, entry("ltx_1", types.LedgerTransactionPayment, -5000, -5000).Validate())

		err := entry("ltx_2", types.LedgerTransactionPayment, 5000, 5000).Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("zero amount is invalid either way", func(t *testing.T) {
		assert.Error(t, entry("ltx_1", types.LedgerTransactionInvoice, 0, 0).Validate())
		assert.Error(t, entry("ltx_2", types.LedgerTransactionPayment, 0, 0).Validate())
	})
}

func TestVerifyChain(t *testing.T) {
	t.Run("consistent chain", func(t *testing.T) {
		entries := []*Entry{
			entry("ltx_1", types.LedgerTransactionInvoice, 15000, 15000),
			entry("ltx_2", types.LedgerTransactionInvoice, 240000, 255000),
			entry("ltx_3", types.LedgerTransactionPayment, -255000, 0),
		}
		assert.NoError(t, VerifyChain(entries))
	})

	t.Run("empty ledger is consistent", func(t *testing.T) {
		assert.NoError(t, VerifyChain(nil))
	})

	t.Run("broken chain reports integrity violation", func(t *testing.T) {
		entries := []*Entry{
			entry("ltx_1", types.LedgerTransactionInvoice, 15000, 15000),
			entry("ltx_2", types.LedgerTransactionInvoice, 240000, 250000), // tampered
		}
		err := VerifyChain(entries)
		require.Error(t, err)
		assert.True(t, ierr.IsLedgerIntegrity(err))
	})

	t.Run("first entry must start from zero", func(t *testing.T) {
		entries := []*Entry{
			entry("ltx_1", types.LedgerTransactionInvoice, 15000, 20000),
		}
		err := VerifyChain(entries)
		require.Error(t, err)
		assert.True(t, ierr.IsLedgerIntegrity(err))
	})
}

func TestBalanceStatusClassification(t *testing.T) {
	assert.Equal(t, types.BalanceStatusDebtor, types.BalanceStatusOf(decimal.NewFromInt(100)))
	assert.Equal(t, types.BalanceStatusCreditor, types.BalanceStatusOf(decimal.NewFromInt(-100)))
	assert.Equal(t, types.BalanceStatusSettled, types.BalanceStatusOf(decimal.Zero))
}
