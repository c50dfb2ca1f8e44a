package usage

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Result is the outcome of normalizing one raw input unit. Normalization is
// lenient and never fails outright: blank quantity cells coerce to zero,
// while malformed or negative values are carried as issues for the batch
// validator to turn into rejections.
type Result struct {
	// RowNumber is the 1-based position of the unit within the batch,
	// used for operator-facing reporting
	RowNumber int
	Record    *Record
	// Issues holds coercion problems in the order they were found
	Issues []string
}

// Ok reports whether normalization produced a clean candidate record
func (r Result) Ok() bool {
	return len(r.Issues) == 0
}

// FirstIssue returns the leading coercion problem, or an empty string
func (r Result) FirstIssue() string {
	if len(r.Issues) == 0 {
		return ""
	}
	return r.Issues[0]
}

// NormalizeRow converts one positional spreadsheet-style row into a Record
// candidate under the given schema. Missing trailing cells read as blank.
func NormalizeRow(schema TabularSchema, cells []string, rowNumber int) Result {
	res := Result{RowNumber: rowNumber, Record: &Record{}}
	rec := res.Record

	rec.AdminUsername = cellAt(cells, schema.ColAdminUsername)
	rec.FullName = cellAt(cells, schema.ColFullName)
	rec.Phone = cellAt(cells, schema.ColPhone)
	rec.TelegramID = cellAt(cells, schema.ColTelegramID)
	rec.StoreName = cellAt(cells, schema.ColStoreName)

	rec.PricePerGBOverride = res.quantity(cellAt(cells, schema.ColPricePerGB), "price per GB")
	rec.UnlimitedMonthlyOverride = res.quantity(cellAt(cells, schema.ColUnlimitedMonthly), "unlimited monthly price")

	for i := range rec.LimitedVolumes {
		months := i + 1
		cell := cellAt(cells, schema.ColLimitedVolume(months))
		rec.LimitedVolumes[i] = res.quantity(cell, fmt.Sprintf("limited %d month volume", months))
	}
	for i := range rec.UnlimitedCounts {
		months := i + 1
		cell := cellAt(cells, schema.ColUnlimitedCount(months))
		rec.UnlimitedCounts[i] = res.count(cell, fmt.Sprintf("unlimited %d month count", months))
	}

	return res
}

// NormalizeStructured converts one key-value record into a Record candidate.
// Every field of the vocabulary must be present; a missing key is an issue
// even when the value would have been empty.
func NormalizeStructured(fields map[string]any, recordNumber int) Result {
	res := Result{RowNumber: recordNumber, Record: &Record{}}
	rec := res.Record

	username, ok := fields[FieldAdminUsername]
	if !ok {
		res.Issues = append(res.Issues, fmt.Sprintf("field %s missing", FieldAdminUsername))
	} else {
		rec.AdminUsername = strings.TrimSpace(toString(username))
	}

	for i := range rec.LimitedVolumes {
		months := i + 1
		name := FieldLimitedVolume(months)
		raw, ok := fields[name]
		if !ok {
			res.Issues = append(res.Issues, fmt.Sprintf("field %s missing", name))
			continue
		}
		rec.LimitedVolumes[i] = res.quantity(toString(raw), name)
	}
	for i := range rec.UnlimitedCounts {
		months := i + 1
		name := FieldUnlimitedCount(months)
		raw, ok := fields[name]
		if !ok {
			res.Issues = append(res.Issues, fmt.Sprintf("field %s missing", name))
			continue
		}
		rec.UnlimitedCounts[i] = res.count(toString(raw), name)
	}

	return res
}

// IsBlankRow reports whether every cell of a tabular row is empty after
// trimming. Two consecutive blank rows are the upstream end-of-data marker.
func IsBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// quantity coerces a cell to a non-negative decimal. Blank means zero;
// anything unparseable or negative becomes an issue and reads as zero so the
// rest of the row still normalizes.
func (r *Result) quantity(cell string, field string) decimal.Decimal {
	if cell == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cell)
	if err != nil || d.IsNegative() {
		r.Issues = append(r.Issues, fmt.Sprintf("%s must be a valid non-negative number", field))
		return decimal.Zero
	}
	return d
}

// count coerces a cell to a non-negative whole number
func (r *Result) count(cell string, field string) int {
	if cell == "" {
		return 0
	}
	d, err := decimal.NewFromString(cell)
	if err != nil || d.IsNegative() || !d.IsInteger() {
		r.Issues = append(r.Issues, fmt.Sprintf("%s must be a valid non-negative number", field))
		return 0
	}
	return int(d.IntPart())
}

// toString renders a structured value for coercion. JSON numbers arrive as
// float64; decimal formatting keeps them exact for the quantity parser.
func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return decimal.NewFromFloat(t).String()
	case int:
		return decimal.NewFromInt(int64(t)).String()
	case int64:
		return decimal.NewFromInt(t).String()
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}
