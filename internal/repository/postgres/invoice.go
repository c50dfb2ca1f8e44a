package postgres

import (
	"context"
	"database/sql"

	"github.com/Iscgrou/repbill/internal/domain/invoice"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/logger"
	"github.com/Iscgrou/repbill/internal/postgres"
	"github.com/Iscgrou/repbill/internal/types"
)

type invoiceRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

func NewInvoiceRepository(client postgres.IClient, log *logger.Logger) invoice.Repository {
	return &invoiceRepository{client: client, logger: log}
}

const invoiceColumns = `
	id, invoice_number, representative_id, invoice_status, amount_due,
	description, issue_date, due_date, paid_at, status, created_at, updated_at,
	created_by, updated_by`

const lineItemColumns = `
	id, invoice_id, description, quantity, unit_price, amount,
	subscription_type, duration_months, status, created_at, updated_at,
	created_by, updated_by`

func (r *invoiceRepository) CreateWithLineItems(ctx context.Context, inv *invoice.Invoice) error {
	q := r.client.Querier(ctx)

	_, err := q.ExecContext(ctx, `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		inv.ID, inv.InvoiceNumber, inv.RepresentativeID, inv.InvoiceStatus, inv.AmountDue,
		inv.Description, inv.IssueDate, inv.DueDate, inv.PaidAt, inv.Status,
		inv.CreatedAt, inv.UpdatedAt, inv.CreatedBy, inv.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHintf("invoice number %s already exists", inv.InvoiceNumber).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			Mark(ierr.ErrDatabase)
	}

	for _, item := range inv.LineItems {
		_, err := q.ExecContext(ctx, `
			INSERT INTO invoice_line_items (`+lineItemColumns+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
			item.ID, inv.ID, item.Description, item.Quantity, item.UnitPrice, item.Amount,
			item.SubscriptionType, item.DurationMonths, item.Status,
			item.CreatedAt, item.UpdatedAt, item.CreatedBy, item.UpdatedBy,
		)
		if err != nil {
			return ierr.WithError(err).
				WithHint("Failed to create invoice line item").
				Mark(ierr.ErrDatabase)
		}
	}

	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = $1`, number)
}

func (r *invoiceRepository) getOne(ctx context.Context, query string, arg any) (*invoice.Invoice, error) {
	q := r.client.Querier(ctx)
	var inv invoice.Invoice
	if err := q.GetContext(ctx, &inv, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("invoice not found").
				WithHint("Invoice not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get invoice").
			Mark(ierr.ErrDatabase)
	}

	if err := q.SelectContext(ctx, &inv.LineItems, `
		SELECT `+lineItemColumns+` FROM invoice_line_items WHERE invoice_id = $1 ORDER BY created_at`,
		inv.ID,
	); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load invoice line items").
			Mark(ierr.ErrDatabase)
	}
	return &inv, nil
}

func (r *invoiceRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	q := r.client.Querier(ctx)
	var exists bool
	if err := q.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM invoices WHERE invoice_number = $1)`, number); err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check invoice number").
			Mark(ierr.ErrDatabase)
	}
	return exists, nil
}

func (r *invoiceRepository) ListByRepresentative(ctx context.Context, representativeID string) ([]*invoice.Invoice, error) {
	q := r.client.Querier(ctx)
	var invoices []*invoice.Invoice
	if err := q.SelectContext(ctx, &invoices, `
		SELECT `+invoiceColumns+` FROM invoices WHERE representative_id = $1 ORDER BY issue_date DESC`,
		representativeID,
	); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id string, status types.InvoiceStatus) error {
	q := r.client.Querier(ctx)
	res, err := q.ExecContext(ctx, `
		UPDATE invoices SET invoice_status = $2,
			paid_at = CASE WHEN $2 = 'paid' THEN now() ELSE paid_at END,
			updated_at = now()
		WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update invoice status").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
