package service

import (
	"github.com/Iscgrou/repbill/internal/config"
	"github.com/Iscgrou/repbill/internal/domain/invoice"
	"github.com/Iscgrou/repbill/internal/domain/ledger"
	"github.com/Iscgrou/repbill/internal/domain/representative"
	"github.com/Iscgrou/repbill/internal/logger"
	"github.com/Iscgrou/repbill/internal/postgres"
)

// ServiceParams bundles the dependencies shared by all services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	RepresentativeRepo representative.Repository
	InvoiceRepo        invoice.Repository
	LedgerRepo         ledger.Repository
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	representativeRepo representative.Repository,
	invoiceRepo invoice.Repository,
	ledgerRepo ledger.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:             logger,
		Config:             config,
		DB:                 db,
		RepresentativeRepo: representativeRepo,
		InvoiceRepo:        invoiceRepo,
		LedgerRepo:         ledgerRepo,
	}
}
