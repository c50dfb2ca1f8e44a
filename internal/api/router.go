package api

import (
	v1 "github.com/Iscgrou/repbill/internal/api/v1"
	"github.com/Iscgrou/repbill/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Import         *v1.ImportHandler
	Invoice        *v1.InvoiceHandler
	Ledger         *v1.LedgerHandler
	Representative *v1.RepresentativeHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Import routes
	imports := router.Group("/imports")
	{
		imports.POST("/tabular", handlers.Import.ProcessTabular)
		imports.POST("/csv", handlers.Import.ProcessCSV)
		imports.POST("/structured", handlers.Import.ProcessStructured)
	}

	// Invoice routes
	invoices := router.Group("/invoices")
	{
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.PUT("/:id/status", handlers.Invoice.UpdateStatus)
	}

	// Representative routes
	representatives := router.Group("/representatives")
	{
		representatives.POST("", handlers.Representative.CreateRepresentative)
		representatives.GET("", handlers.Representative.ListRepresentatives)
		representatives.GET("/:id", handlers.Representative.GetRepresentative)
		representatives.PUT("/:id/pricing", handlers.Representative.UpdatePricing)
		representatives.GET("/:id/invoices", handlers.Ledger.ListInvoices)
		representatives.POST("/:id/payments", handlers.Ledger.PostPayment)
		representatives.GET("/:id/ledger", handlers.Ledger.GetSnapshot)
		representatives.POST("/:id/ledger/reconcile", handlers.Ledger.Reconcile)
	}
}
