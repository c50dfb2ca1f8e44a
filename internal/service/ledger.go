package service

import (
	"context"
	"sync"
	"time"

	"github.com/Iscgrou/repbill/internal/domain/invoice"
	"github.com/Iscgrou/repbill/internal/domain/ledger"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// LedgerService is the reconciler over the per-representative ledgers.
// Invoices post as positive debits, payments as negative credits; the
// running balance chains from the immediately preceding entry.
type LedgerService interface {
	// PostInvoice appends a debit for an assembled invoice and returns the
	// entry carrying the new running balance
	PostInvoice(ctx context.Context, inv *invoice.Invoice) (*ledger.Entry, error)

	// PostPayment appends a credit of the given (positive) amount
	PostPayment(ctx context.Context, representativeID string, amount decimal.Decimal, reference string, description string) (*ledger.Entry, error)

	// GetCurrentBalance returns the running balance of the latest entry,
	// zero for an empty ledger
	GetCurrentBalance(ctx context.Context, representativeID string) (decimal.Decimal, error)

	// GetSnapshot returns the full ledger read model for balance display
	// and statement export
	GetSnapshot(ctx context.Context, representativeID string) (*ledger.Snapshot, error)

	// Reconcile recomputes the running-balance chain from full history.
	// Audit operation only, never on the posting hot path.
	Reconcile(ctx context.Context, representativeID string) error
}

type ledgerService struct {
	ServiceParams

	// locks serializes ledger mutations per representative; postings for
	// different representatives proceed independently
	locks sync.Map
}

func NewLedgerService(params ServiceParams) LedgerService {
	return &ledgerService{ServiceParams: params}
}

func (s *ledgerService) lockFor(representativeID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(representativeID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *ledgerService) PostInvoice(ctx context.Context, inv *invoice.Invoice) (*ledger.Entry, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	return s.append(ctx, &ledger.Entry{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LEDGER_ENTRY),
		RepresentativeID: inv.RepresentativeID,
		Type:             types.LedgerTransactionInvoice,
		Amount:           inv.AmountDue,
		TransactionDate:  inv.IssueDate,
		ReferenceNumber:  lo.ToPtr(inv.InvoiceNumber),
		Description:      "Invoice " + inv.InvoiceNumber,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	})
}

func (s *ledgerService) PostPayment(ctx context.Context, representativeID string, amount decimal.Decimal, reference string, description string) (*ledger.Entry, error) {
	if !amount.IsPositive() {
		return nil, ierr.NewError("invalid payment amount").
			WithHint("Payment amount must be positive").
			Mark(ierr.ErrValidation)
	}

	entry := &ledger.Entry{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LEDGER_ENTRY),
		RepresentativeID: representativeID,
		Type:             types.LedgerTransactionPayment,
		Amount:           amount.Neg(),
		TransactionDate:  time.Now().UTC(),
		Description:      description,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
	if reference != "" {
		entry.ReferenceNumber = lo.ToPtr(reference)
	}

	return s.append(ctx, entry)
}

// append serializes on the representative, chains the running balance from
// the last entry and durably appends. O(1): it never walks full history.
func (s *ledgerService) append(ctx context.Context, entry *ledger.Entry) (*ledger.Entry, error) {
	mu := s.lockFor(entry.RepresentativeID)
	mu.Lock()
	defer mu.Unlock()

	previous := decimal.Zero
	last, err := s.LedgerRepo.GetLastEntry(ctx, entry.RepresentativeID)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if last != nil {
		previous = last.RunningBalance
	}
	entry.RunningBalance = previous.Add(entry.Amount)

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.LedgerRepo.AppendEntry(ctx, entry); err != nil {
		return nil, err
	}

	s.Logger.Infow("ledger entry appended",
		"representative_id", entry.RepresentativeID,
		"type", entry.Type,
		"amount", entry.Amount,
		"running_balance", entry.RunningBalance,
	)
	return entry, nil
}

func (s *ledgerService) GetCurrentBalance(ctx context.Context, representativeID string) (decimal.Decimal, error) {
	last, err := s.LedgerRepo.GetLastEntry(ctx, representativeID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return last.RunningBalance, nil
}

func (s *ledgerService) GetSnapshot(ctx context.Context, representativeID string) (*ledger.Snapshot, error) {
	entries, err := s.LedgerRepo.ListByRepresentative(ctx, representativeID)
	if err != nil {
		return nil, err
	}

	balance := decimal.Zero
	if len(entries) > 0 {
		balance = entries[len(entries)-1].RunningBalance
	}

	return &ledger.Snapshot{
		RepresentativeID: representativeID,
		CurrentBalance:   balance,
		BalanceStatus:    types.BalanceStatusOf(balance),
		Transactions:     entries,
	}, nil
}

func (s *ledgerService) Reconcile(ctx context.Context, representativeID string) error {
	entries, err := s.LedgerRepo.ListByRepresentative(ctx, representativeID)
	if err != nil {
		return err
	}
	return ledger.VerifyChain(entries)
}
