package repository

import (
	"github.com/Iscgrou/repbill/internal/domain/invoice"
	"github.com/Iscgrou/repbill/internal/domain/ledger"
	"github.com/Iscgrou/repbill/internal/domain/representative"
	"github.com/Iscgrou/repbill/internal/logger"
	"github.com/Iscgrou/repbill/internal/postgres"
	pgrepo "github.com/Iscgrou/repbill/internal/repository/postgres"
	"go.uber.org/fx"
)

// Module provides all repository implementations
var Module = fx.Options(
	fx.Provide(
		NewRepresentativeRepository,
		NewInvoiceRepository,
		NewLedgerRepository,
	),
)

func NewRepresentativeRepository(client postgres.IClient, log *logger.Logger) representative.Repository {
	return pgrepo.NewRepresentativeRepository(client, log)
}

func NewInvoiceRepository(client postgres.IClient, log *logger.Logger) invoice.Repository {
	return pgrepo.NewInvoiceRepository(client, log)
}

func NewLedgerRepository(client postgres.IClient, log *logger.Logger) ledger.Repository {
	return pgrepo.NewLedgerRepository(client, log)
}
