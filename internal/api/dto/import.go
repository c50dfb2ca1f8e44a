package dto

import (
	ierr "github.com/Iscgrou/repbill/internal/errors"
)

// TabularImportRequest carries one spreadsheet-style batch: ordered rows of
// positional cells. Row 0 is the header and is always skipped.
type TabularImportRequest struct {
	Rows [][]string `json:"rows" binding:"required"`
}

func (r *TabularImportRequest) Validate() error {
	if len(r.Rows) == 0 {
		return ierr.NewError("rows cannot be empty").
			WithHint("Import batch must contain at least a header row").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// StructuredImportRequest carries one batch of key-value records using the
// fixed field-name vocabulary
type StructuredImportRequest struct {
	Records []map[string]any `json:"records" binding:"required"`
}

func (r *StructuredImportRequest) Validate() error {
	if len(r.Records) == 0 {
		return ierr.NewError("records cannot be empty").
			WithHint("Import batch must contain at least one record").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ImportResult is the operator-facing report of one import operation.
// Every rejected or skipped unit is attributable to its 1-based position.
type ImportResult struct {
	BatchID       string             `json:"batch_id"`
	TotalRows     int                `json:"total_rows"`
	ProcessedRows int                `json:"processed_rows"`
	SkippedRows   int                `json:"skipped_rows"`
	Errors        []string           `json:"errors"`
	Invoices      []*InvoiceResponse `json:"invoices"`
}
