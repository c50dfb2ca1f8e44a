package postgres

import (
	"context"
	"database/sql"

	"github.com/Iscgrou/repbill/internal/domain/ledger"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/logger"
	"github.com/Iscgrou/repbill/internal/postgres"
)

type ledgerRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

func NewLedgerRepository(client postgres.IClient, log *logger.Logger) ledger.Repository {
	return &ledgerRepository{client: client, logger: log}
}

const ledgerColumns = `
	id, representative_id, type, amount, running_balance, transaction_date,
	reference_number, description, status, created_at, updated_at,
	created_by, updated_by`

// AppendEntry appends one immutable entry. A per-representative advisory
// lock serializes concurrent appends so the running-balance chain cannot
// interleave, and the chain link to the previous entry is re-checked inside
// the same transaction.
func (r *ledgerRepository) AppendEntry(ctx context.Context, entry *ledger.Entry) error {
	q := r.client.Querier(ctx)

	if _, err := q.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, entry.RepresentativeID); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to serialize ledger append").
			Mark(ierr.ErrDatabase)
	}

	last, err := r.GetLastEntry(ctx, entry.RepresentativeID)
	if err != nil && !ierr.IsNotFound(err) {
		return err
	}
	previous := decimalZeroIfNil(last)
	if !entry.RunningBalance.Equal(previous.Add(entry.Amount)) {
		return ierr.NewError("ledger append would break the running balance chain").
			WithHint("Running balance must continue from the previous entry").
			WithReportableDetails(map[string]any{
				"representative_id": entry.RepresentativeID,
				"expected_balance":  previous.Add(entry.Amount),
				"actual_balance":    entry.RunningBalance,
			}).
			Mark(ierr.ErrLedgerIntegrity)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO ledger_entries (`+ledgerColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		entry.ID, entry.RepresentativeID, entry.Type, entry.Amount, entry.RunningBalance,
		entry.TransactionDate, entry.ReferenceNumber, entry.Description, entry.Status,
		entry.CreatedAt, entry.UpdatedAt, entry.CreatedBy, entry.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// posted entries are immutable, a duplicate id is a mutation attempt
			return ierr.WithError(err).
				WithHint("Ledger entries cannot be modified once posted").
				Mark(ierr.ErrLedgerIntegrity)
		}
		return ierr.WithError(err).
			WithHint("Failed to append ledger entry").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *ledgerRepository) GetLastEntry(ctx context.Context, representativeID string) (*ledger.Entry, error) {
	q := r.client.Querier(ctx)
	var entry ledger.Entry
	err := q.GetContext(ctx, &entry, `
		SELECT `+ledgerColumns+` FROM ledger_entries
		WHERE representative_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
		representativeID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("ledger is empty").
				WithHint("No ledger entries for representative").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get last ledger entry").
			Mark(ierr.ErrDatabase)
	}
	return &entry, nil
}

func (r *ledgerRepository) ListByRepresentative(ctx context.Context, representativeID string) ([]*ledger.Entry, error) {
	q := r.client.Querier(ctx)
	var entries []*ledger.Entry
	if err := q.SelectContext(ctx, &entries, `
		SELECT `+ledgerColumns+` FROM ledger_entries
		WHERE representative_id = $1
		ORDER BY created_at ASC, id ASC`,
		representativeID,
	); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list ledger entries").
			Mark(ierr.ErrDatabase)
	}
	return entries, nil
}
