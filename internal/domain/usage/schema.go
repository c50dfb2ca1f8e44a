package usage

import (
	"fmt"

	"github.com/Iscgrou/repbill/internal/types"
)

// TabularSchema is the versioned column layout of spreadsheet-style usage
// batches. It is a wire contract with the upstream data source: layout
// changes must land here, nowhere else.
type TabularSchema struct {
	Version int

	ColAdminUsername    int
	ColFullName         int
	ColPhone            int
	ColTelegramID       int
	ColStoreName        int
	ColPricePerGB       int
	ColUnlimitedMonthly int

	// ColLimitedVolumeStart..+5 hold limited volumes for months 1..6;
	// ColUnlimitedCountStart..+5 hold unlimited counts for months 1..6.
	ColLimitedVolumeStart  int
	ColUnlimitedCountStart int
}

// TabularSchemaV1 is the current upstream layout. Columns 13-18 are reserved
// and ignored.
var TabularSchemaV1 = TabularSchema{
	Version:                1,
	ColAdminUsername:       0,
	ColFullName:            1,
	ColPhone:               2,
	ColTelegramID:          3,
	ColStoreName:           4,
	ColPricePerGB:          5,
	ColUnlimitedMonthly:    6,
	ColLimitedVolumeStart:  7,
	ColUnlimitedCountStart: 19,
}

// ColLimitedVolume returns the column index of the limited volume for the
// given duration in months
func (s TabularSchema) ColLimitedVolume(months int) int {
	return s.ColLimitedVolumeStart + months - types.MinDurationMonths
}

// ColUnlimitedCount returns the column index of the unlimited count for the
// given duration in months
func (s TabularSchema) ColUnlimitedCount(months int) int {
	return s.ColUnlimitedCountStart + months - types.MinDurationMonths
}

// Structured batches use a fixed field-name vocabulary. All fields must be
// present on every record; a missing key is a rejection distinct from a
// present-but-empty value.
const (
	FieldAdminUsername = "admin_username"

	fieldLimitedVolumeFmt  = "limited_%d_month_volume"
	fieldUnlimitedCountFmt = "unlimited_%d_month"
)

// FieldLimitedVolume returns the structured field name for the limited
// volume of the given duration, e.g. limited_3_month_volume
func FieldLimitedVolume(months int) string {
	return fmt.Sprintf(fieldLimitedVolumeFmt, months)
}

// FieldUnlimitedCount returns the structured field name for the unlimited
// count of the given duration, e.g. unlimited_3_month
func FieldUnlimitedCount(months int) string {
	return fmt.Sprintf(fieldUnlimitedCountFmt, months)
}

// StructuredFields lists the complete required vocabulary for one record
func StructuredFields() []string {
	fields := make([]string, 0, 1+2*types.DurationTierCount)
	fields = append(fields, FieldAdminUsername)
	for m := types.MinDurationMonths; m <= types.MaxDurationMonths; m++ {
		fields = append(fields, FieldLimitedVolume(m))
	}
	for m := types.MinDurationMonths; m <= types.MaxDurationMonths; m++ {
		fields = append(fields, FieldUnlimitedCount(m))
	}
	return fields
}
