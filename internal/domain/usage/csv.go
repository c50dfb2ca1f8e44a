package usage

import (
	"encoding/csv"
	"io"

	ierr "github.com/Iscgrou/repbill/internal/errors"
)

// ReadTabular reads a CSV stream into the raw rows the tabular pipeline
// consumes. Rows may have varying cell counts; short rows read as blank
// during normalization, so no per-row length check happens here.
func ReadTabular(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid CSV file").
			Mark(ierr.ErrValidation)
	}
	return rows, nil
}
