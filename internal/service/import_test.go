package service

import (
	"context"
	"testing"

	"github.com/Iscgrou/repbill/internal/domain/invoice"
	"github.com/Iscgrou/repbill/internal/domain/representative"
	"github.com/Iscgrou/repbill/internal/domain/usage"
	"github.com/Iscgrou/repbill/internal/testutil"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ImportServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ImportService
	ledger  LedgerService
}

func TestImportService(t *testing.T) {
	suite.Run(t, new(ImportServiceSuite))
}

func (s *ImportServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	params := ServiceParams{
		Logger:             s.GetLogger(),
		Config:             s.GetConfig(),
		DB:                 s.GetDB(),
		RepresentativeRepo: s.GetStores().RepresentativeRepo,
		InvoiceRepo:        s.GetStores().InvoiceRepo,
		LedgerRepo:         s.GetStores().LedgerRepo,
	}
	s.ledger = NewLedgerService(params)
	s.service = NewImportService(params, NewPricingService(), s.ledger)
}

// seedRepresentative registers a representative with every limited tier at
// 1000*months per GB and unlimited at 40000 per month
func (s *ImportServiceSuite) seedRepresentative(adminUsername string) *representative.Representative {
	var pricing representative.PricingProfile
	for i := range pricing.LimitedPrices {
		pricing.LimitedPrices[i] = decimal.NewFromInt(int64(1000 * (i + 1)))
	}
	pricing.UnlimitedMonthlyPrice = decimal.NewFromInt(40000)

	rep := &representative.Representative{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REPRESENTATIVE),
		AdminUsername: adminUsername,
		Pricing:       pricing,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().RepresentativeRepo.Create(s.GetContext(), rep))
	return rep
}

// row builds a 25-cell tabular row with the given positional values set
func row(cells map[int]string) []string {
	r := make([]string, 25)
	for idx, v := range cells {
		r[idx] = v
	}
	return r
}

func header() []string {
	return row(map[int]string{0: "admin_username", 1: "full_name"})
}

func blank() []string {
	return make([]string, 25)
}

func (s *ImportServiceSuite) TestTabularImport() {
	rep := s.seedRepresentative("shop_tehran")

	result, err := s.service.ProcessTabular(s.GetContext(), [][]string{
		header(),
		row(map[int]string{0: "shop_tehran", 9: "5"}),  // 5 GB, 3 month tier
		row(map[int]string{0: "shop_tehran", 21: "2"}), // two 3 month unlimited
	})
	s.NoError(err)

	s.Equal(2, result.TotalRows)
	s.Equal(2, result.ProcessedRows)
	s.Zero(result.SkippedRows)
	s.Empty(result.Errors)
	s.Require().Len(result.Invoices, 2)

	s.True(result.Invoices[0].AmountDue.Equal(decimal.NewFromInt(15000)), "5 GB * 3000")
	s.True(result.Invoices[1].AmountDue.Equal(decimal.NewFromInt(240000)), "2 * 40000 * 3 months")

	// each invoice got a distinct number and a ledger debit
	s.NotEqual(result.Invoices[0].InvoiceNumber, result.Invoices[1].InvoiceNumber)
	balance, err := s.ledger.GetCurrentBalance(s.GetContext(), rep.ID)
	s.NoError(err)
	s.True(balance.Equal(decimal.NewFromInt(255000)))

	invoices, err := s.GetStores().InvoiceRepo.ListByRepresentative(s.GetContext(), rep.ID)
	s.NoError(err)
	s.Len(invoices, 2)
	s.Equal(types.InvoiceStatusPending, invoices[0].InvoiceStatus)
}

func (s *ImportServiceSuite) TestTabularImportRejectsBadRowsAndKeepsGoodOnes() {
	rep := s.seedRepresentative("shop_tehran")

	result, err := s.service.ProcessTabular(s.GetContext(), [][]string{
		header(),
		row(map[int]string{0: "shop_tehran", 7: "5"}),
		row(map[int]string{0: "shop_tehran", 7: "-3"}), // negative volume
		row(map[int]string{0: "shop_tehran", 8: "2"}),
	})
	s.NoError(err)

	s.Equal(3, result.TotalRows)
	s.Equal(2, result.ProcessedRows)
	s.Equal(1, result.SkippedRows)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "row 2:")
	s.Contains(result.Errors[0], "must be a valid non-negative number")

	invoices, err := s.GetStores().InvoiceRepo.ListByRepresentative(s.GetContext(), rep.ID)
	s.NoError(err)
	s.Len(invoices, 2)
}

func (s *ImportServiceSuite) TestTabularImportStopsAtTwoBlankRows() {
	s.seedRepresentative("shop_tehran")

	result, err := s.service.ProcessTabular(s.GetContext(), [][]string{
		header(),
		row(map[int]string{0: "shop_tehran", 7: "5"}),
		blank(),
		blank(),
		row(map[int]string{0: "shop_tehran", 7: "100"}), // after terminator, ignored
	})
	s.NoError(err)

	s.Equal(1, result.TotalRows)
	s.Equal(1, result.ProcessedRows)
	s.Len(result.Invoices, 1)
}

func (s *ImportServiceSuite) TestTabularImportLoneBlankRowIsRejected() {
	s.seedRepresentative("shop_tehran")

	result, err := s.service.ProcessTabular(s.GetContext(), [][]string{
		header(),
		row(map[int]string{0: "shop_tehran", 7: "5"}),
		blank(),
		row(map[int]string{0: "shop_tehran", 7: "2"}),
	})
	s.NoError(err)

	// a single blank row is not a terminator, it fails validation like any
	// other row with no admin username
	s.Equal(3, result.TotalRows)
	s.Equal(2, result.ProcessedRows)
	s.Equal(1, result.SkippedRows)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "row 2:")
	s.Contains(result.Errors[0], "admin username required")
}

func (s *ImportServiceSuite) TestImportRejectsUnknownRepresentative() {
	s.seedRepresentative("shop_tehran")

	result, err := s.service.ProcessTabular(s.GetContext(), [][]string{
		header(),
		row(map[int]string{0: "shop_unknown", 7: "5"}),
	})
	s.NoError(err)

	s.Zero(result.ProcessedRows)
	s.Equal(1, result.SkippedRows)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "shop_unknown")
}

func (s *ImportServiceSuite) TestImportSkipsRecordsWithNoUsage() {
	s.seedRepresentative("shop_tehran")

	result, err := s.service.ProcessTabular(s.GetContext(), [][]string{
		header(),
		row(map[int]string{0: "shop_tehran"}), // all quantities blank
	})
	s.NoError(err)

	s.Zero(result.ProcessedRows)
	s.Equal(1, result.SkippedRows)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "no subscription data present")
}

func (s *ImportServiceSuite) TestImportSkipsUnpricedRecordsWithoutError() {
	// representative exists but has no pricing configured
	rep := &representative.Representative{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REPRESENTATIVE),
		AdminUsername: "shop_unpriced",
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().RepresentativeRepo.Create(s.GetContext(), rep))

	result, err := s.service.ProcessTabular(s.GetContext(), [][]string{
		header(),
		row(map[int]string{0: "shop_unpriced", 7: "5"}),
	})
	s.NoError(err)

	// zero-priced usage is skipped, not an error
	s.Zero(result.ProcessedRows)
	s.Equal(1, result.SkippedRows)
	s.Empty(result.Errors)
	s.Empty(result.Invoices)
}

func (s *ImportServiceSuite) TestImportAppliesRowLevelPriceOverride() {
	s.seedRepresentative("shop_tehran")

	result, err := s.service.ProcessTabular(s.GetContext(), [][]string{
		header(),
		row(map[int]string{0: "shop_tehran", 5: "2000", 7: "4"}),
	})
	s.NoError(err)

	s.Require().Len(result.Invoices, 1)
	s.True(result.Invoices[0].AmountDue.Equal(decimal.NewFromInt(8000)), "4 GB * override 2000")
}

func (s *ImportServiceSuite) TestStructuredImport() {
	rep := s.seedRepresentative("shop_tehran")

	record := map[string]any{usage.FieldAdminUsername: "shop_tehran"}
	for m := 1; m <= 6; m++ {
		record[usage.FieldLimitedVolume(m)] = "0"
		record[usage.FieldUnlimitedCount(m)] = "0"
	}
	record[usage.FieldLimitedVolume(3)] = float64(5)

	result, err := s.service.ProcessStructured(s.GetContext(), []map[string]any{record})
	s.NoError(err)

	s.Equal(1, result.ProcessedRows)
	s.Require().Len(result.Invoices, 1)
	s.True(result.Invoices[0].AmountDue.Equal(decimal.NewFromInt(15000)))
	s.Equal(rep.ID, result.Invoices[0].RepresentativeID)
}

func (s *ImportServiceSuite) TestStructuredImportRequiresFullVocabulary() {
	s.seedRepresentative("shop_tehran")

	record := map[string]any{usage.FieldAdminUsername: "shop_tehran"}
	for m := 1; m <= 6; m++ {
		record[usage.FieldLimitedVolume(m)] = "0"
		record[usage.FieldUnlimitedCount(m)] = "0"
	}
	delete(record, usage.FieldUnlimitedCount(4))

	result, err := s.service.ProcessStructured(s.GetContext(), []map[string]any{record})
	s.NoError(err)

	s.Zero(result.ProcessedRows)
	s.Equal(1, result.SkippedRows)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "record 1:")
	s.Contains(result.Errors[0], "field unlimited_4_month missing")
}

func (s *ImportServiceSuite) TestBlankUsernameOutranksCoercionIssues() {
	s.seedRepresentative("shop_tehran")

	result, err := s.service.ProcessTabular(s.GetContext(), [][]string{
		header(),
		row(map[int]string{7: "abc"}), // no username and a malformed volume
		row(map[int]string{0: "shop_tehran", 7: "5"}),
	})
	s.NoError(err)

	s.Equal(1, result.ProcessedRows)
	s.Equal(1, result.SkippedRows)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "row 1:")
	s.Contains(result.Errors[0], "admin username required")
}

func (s *ImportServiceSuite) TestStructuredMissingUsernameKeepsDistinctReason() {
	s.seedRepresentative("shop_tehran")

	record := map[string]any{}
	for m := 1; m <= 6; m++ {
		record[usage.FieldLimitedVolume(m)] = "0"
		record[usage.FieldUnlimitedCount(m)] = "0"
	}

	result, err := s.service.ProcessStructured(s.GetContext(), []map[string]any{record})
	s.NoError(err)

	s.Equal(1, result.SkippedRows)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "field admin_username missing")
}

// collidingInvoiceStore reports every candidate invoice number as taken
type collidingInvoiceStore struct {
	invoice.Repository
}

func (s collidingInvoiceStore) NumberExists(ctx context.Context, number string) (bool, error) {
	return true, nil
}

func (s *ImportServiceSuite) TestImportRejectsRecordWhenNoNumberCanBeReserved() {
	rep := s.seedRepresentative("shop_tehran")

	params := ServiceParams{
		Logger:             s.GetLogger(),
		Config:             s.GetConfig(),
		DB:                 s.GetDB(),
		RepresentativeRepo: s.GetStores().RepresentativeRepo,
		InvoiceRepo:        collidingInvoiceStore{Repository: s.GetStores().InvoiceRepo},
		LedgerRepo:         s.GetStores().LedgerRepo,
	}
	svc := NewImportService(params, NewPricingService(), NewLedgerService(params))

	result, err := svc.ProcessTabular(s.GetContext(), [][]string{
		header(),
		row(map[int]string{0: "shop_tehran", 7: "5"}),
		row(map[int]string{0: "shop_tehran", 8: "2"}),
	})
	s.NoError(err)

	// exhausting the reservation attempts is fatal for the record, not for
	// the batch
	s.Zero(result.ProcessedRows)
	s.Equal(2, result.SkippedRows)
	s.Require().Len(result.Errors, 2)
	s.Contains(result.Errors[0], "row 1:")
	s.Contains(result.Errors[0], "could not reserve a unique invoice number")
	s.Contains(result.Errors[1], "row 2:")
	s.Empty(result.Invoices)

	invoices, err := s.GetStores().InvoiceRepo.ListByRepresentative(s.GetContext(), rep.ID)
	s.NoError(err)
	s.Empty(invoices)

	entries, err := s.GetStores().LedgerRepo.ListByRepresentative(s.GetContext(), rep.ID)
	s.NoError(err)
	s.Empty(entries)
}

func (s *ImportServiceSuite) TestEmptyBatch() {
	result, err := s.service.ProcessTabular(s.GetContext(), [][]string{header()})
	s.NoError(err)

	s.Zero(result.TotalRows)
	s.Zero(result.ProcessedRows)
	s.Empty(result.Errors)
	s.NotEmpty(result.BatchID)
}

func (s *ImportServiceSuite) TestBatchIDsAreUnique() {
	first, err := s.service.ProcessTabular(s.GetContext(), [][]string{header()})
	s.NoError(err)
	second, err := s.service.ProcessTabular(s.GetContext(), [][]string{header()})
	s.NoError(err)
	s.NotEqual(first.BatchID, second.BatchID)
}
