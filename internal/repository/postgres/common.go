package postgres

import (
	"github.com/Iscgrou/repbill/internal/domain/ledger"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// isUniqueViolation reports whether err is a postgres unique constraint
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if ierr.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

func decimalZeroIfNil(last *ledger.Entry) decimal.Decimal {
	if last == nil {
		return decimal.Zero
	}
	return last.RunningBalance
}
