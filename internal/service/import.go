package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Iscgrou/repbill/internal/api/dto"
	"github.com/Iscgrou/repbill/internal/domain/invoice"
	"github.com/Iscgrou/repbill/internal/domain/representative"
	"github.com/Iscgrou/repbill/internal/domain/usage"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// numberReserveAttempts bounds the uniqueness retry loop for one invoice.
// Exhausting it means a persistent collision, fatal for that record only.
const numberReserveAttempts = 3

// ImportService runs one usage-reporting batch through the full pipeline:
// normalize, validate, price, assemble and post. A batch is atomic: either
// every resulting invoice and ledger debit is persisted together with the
// report, or none are.
type ImportService interface {
	// ProcessTabular imports a spreadsheet-style batch. Row 0 is the
	// header; two consecutive fully-blank rows end the data.
	ProcessTabular(ctx context.Context, rows [][]string) (*dto.ImportResult, error)

	// ProcessStructured imports a batch of key-value records
	ProcessStructured(ctx context.Context, records []map[string]any) (*dto.ImportResult, error)
}

type importService struct {
	ServiceParams

	pricing PricingService
	ledger  LedgerService
	numbers *invoice.NumberGenerator
}

func NewImportService(params ServiceParams, pricing PricingService, ledger LedgerService) ImportService {
	return &importService{
		ServiceParams: params,
		pricing:       pricing,
		ledger:        ledger,
		numbers:       invoice.NewNumberGenerator(params.Config.Billing.InvoiceNumberPrefix),
	}
}

func (s *importService) ProcessTabular(ctx context.Context, rows [][]string) (*dto.ImportResult, error) {
	var units []usage.Result
	if len(rows) > 0 {
		data := rows[1:] // header row is always skipped
		for i := range data {
			if usage.IsBlankRow(data[i]) && i+1 < len(data) && usage.IsBlankRow(data[i+1]) {
				// end-of-data marker, everything after it is ignored
				break
			}
			units = append(units, usage.NormalizeRow(usage.TabularSchemaV1, data[i], i+1))
		}
	}
	return s.process(ctx, units, "row")
}

func (s *importService) ProcessStructured(ctx context.Context, records []map[string]any) (*dto.ImportResult, error) {
	units := make([]usage.Result, len(records))
	for i, rec := range records {
		units[i] = usage.NormalizeStructured(rec, i+1)
	}
	return s.process(ctx, units, "record")
}

// pendingInvoice ties an assembled invoice back to its source position so
// per-record failures stay attributable
type pendingInvoice struct {
	rowNumber int
	inv       *invoice.Invoice
}

func (s *importService) process(ctx context.Context, units []usage.Result, unitLabel string) (*dto.ImportResult, error) {
	result := &dto.ImportResult{
		BatchID:   types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_IMPORT_BATCH),
		TotalRows: len(units),
		Errors:    []string{},
		Invoices:  []*dto.InvoiceResponse{},
	}

	reject := func(rowNumber int, reason string) {
		result.SkippedRows++
		result.Errors = append(result.Errors, fmt.Sprintf("%s %d: %s", unitLabel, rowNumber, reason))
	}

	// batch processing time: every invoice in the batch shares one issue date
	issuedAt := time.Now().UTC()

	var pending []pendingInvoice
	for _, unit := range units {
		rec := unit.Record

		// a blank admin username outranks any coercion issue in the
		// reported reason; a missing structured key keeps its own reason
		if rec.AdminUsername == "" {
			reason := "admin username required"
			if !unit.Ok() && strings.Contains(unit.FirstIssue(), usage.FieldAdminUsername) {
				reason = unit.FirstIssue()
			}
			reject(unit.RowNumber, reason)
			continue
		}
		if !unit.Ok() {
			reject(unit.RowNumber, unit.FirstIssue())
			continue
		}
		if err := rec.Validate(); err != nil {
			reject(unit.RowNumber, ierr.Hint(err))
			continue
		}

		rep, err := s.RepresentativeRepo.GetByAdminUsername(ctx, rec.AdminUsername)
		if err != nil {
			if ierr.IsNotFound(err) {
				reject(unit.RowNumber, fmt.Sprintf("no representative with admin username %q", rec.AdminUsername))
				continue
			}
			return nil, err
		}

		items, total := s.pricing.Calculate(rec, rep.Pricing)
		if len(items) == 0 {
			// valid usage but no applicable pricing configured:
			// skipped, no chargeable data, not an error
			result.SkippedRows++
			s.Logger.Debugw("record priced to zero, skipping",
				"admin_username", rec.AdminUsername,
				"pricing_configured", rep.Pricing.Configured(),
				unitLabel, unit.RowNumber,
			)
			continue
		}

		pending = append(pending, pendingInvoice{
			rowNumber: unit.RowNumber,
			inv:       s.assemble(ctx, rep, items, total, issuedAt),
		})
	}

	// persist the whole batch atomically: invoices, ledger debits and the
	// report commit together or roll back together
	err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		for _, p := range pending {
			number, err := s.reserveNumber(txCtx, issuedAt)
			if err != nil {
				if ierr.IsAlreadyExists(err) {
					reject(p.rowNumber, ierr.Hint(err))
					continue
				}
				return err
			}
			p.inv.InvoiceNumber = number

			if err := s.InvoiceRepo.CreateWithLineItems(txCtx, p.inv); err != nil {
				return err
			}
			if _, err := s.ledger.PostInvoice(txCtx, p.inv); err != nil {
				return err
			}

			result.ProcessedRows++
			result.Invoices = append(result.Invoices, dto.NewInvoiceResponse(p.inv))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("import batch completed",
		"batch_id", result.BatchID,
		"total", result.TotalRows,
		"processed", result.ProcessedRows,
		"skipped", result.SkippedRows,
		"errors", len(result.Errors),
	)
	return result, nil
}

func (s *importService) assemble(ctx context.Context, rep *representative.Representative, items []*invoice.LineItem, total decimal.Decimal, issuedAt time.Time) *invoice.Invoice {
	inv := &invoice.Invoice{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		RepresentativeID: rep.ID,
		InvoiceStatus:    types.InvoiceStatusPending,
		AmountDue:        total,
		Description:      fmt.Sprintf("Usage invoice for %s", rep.AdminUsername),
		IssueDate:        issuedAt,
		LineItems:        items,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
	if days := s.Config.Billing.InvoiceDueDays; days > 0 {
		inv.DueDate = lo.ToPtr(issuedAt.AddDate(0, 0, days))
	}

	for _, item := range items {
		item.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM)
		item.InvoiceID = inv.ID
		item.BaseModel = inv.BaseModel
	}
	return inv
}

// reserveNumber generates candidate numbers and checks them against storage
// until one is free. The check runs inside the batch transaction, so a
// reserved number stays reserved until commit.
func (s *importService) reserveNumber(ctx context.Context, issuedAt time.Time) (string, error) {
	for attempt := 0; attempt < numberReserveAttempts; attempt++ {
		number := s.numbers.Next(issuedAt)
		exists, err := s.InvoiceRepo.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
		s.Logger.Warnw("invoice number collision", "number", number, "attempt", attempt+1)
	}
	return "", ierr.NewError("invoice number collision").
		WithHint("could not reserve a unique invoice number").
		Mark(ierr.ErrAlreadyExists)
}
