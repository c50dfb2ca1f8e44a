package main

import (
	"context"
	"time"

	"github.com/Iscgrou/repbill/internal/api"
	v1 "github.com/Iscgrou/repbill/internal/api/v1"
	"github.com/Iscgrou/repbill/internal/config"
	"github.com/Iscgrou/repbill/internal/logger"
	"github.com/Iscgrou/repbill/internal/postgres"
	"github.com/Iscgrou/repbill/internal/repository"
	"github.com/Iscgrou/repbill/internal/service"
	"github.com/Iscgrou/repbill/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewClient,
		),
	)

	// Repositories
	opts = append(opts, repository.Module)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewPricingService,
			service.NewLedgerService,
			service.NewInvoiceService,
			service.NewRepresentativeService,
			service.NewImportService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	importService service.ImportService,
	invoiceService service.InvoiceService,
	ledgerService service.LedgerService,
	representativeService service.RepresentativeService,
) api.Handlers {
	return api.Handlers{
		Import:         v1.NewImportHandler(importService, logger),
		Invoice:        v1.NewInvoiceHandler(invoiceService, logger),
		Ledger:         v1.NewLedgerHandler(ledgerService, invoiceService, logger),
		Representative: v1.NewRepresentativeHandler(representativeService, logger),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	if cfg.Deployment.Mode == config.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
