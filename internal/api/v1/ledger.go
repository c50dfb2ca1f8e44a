package v1

import (
	"net/http"

	"github.com/Iscgrou/repbill/internal/api/dto"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/logger"
	"github.com/Iscgrou/repbill/internal/service"
	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	ledgerService  service.LedgerService
	invoiceService service.InvoiceService
	log            *logger.Logger
}

func NewLedgerHandler(ledgerService service.LedgerService, invoiceService service.InvoiceService, log *logger.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerService:  ledgerService,
		invoiceService: invoiceService,
		log:            log,
	}
}

// PostPayment godoc
// @Summary Record a payment
// @Description Appends a payment credit to a representative's ledger
// @Tags Ledger
// @Accept json
// @Produce json
// @Param id path string true "Representative ID"
// @Param request body dto.PostPaymentRequest true "Payment"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /representatives/{id}/payments [post]
func (h *LedgerHandler) PostPayment(c *gin.Context) {
	representativeID := c.Param("id")

	var req dto.PostPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	entry, err := h.ledgerService.PostPayment(c.Request.Context(), representativeID, req.Amount, req.ReferenceNumber, req.Description)
	if err != nil {
		h.log.Errorw("payment posting failed", "representative_id", representativeID, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.LedgerEntryResponse{Entry: *entry})
}

// GetSnapshot godoc
// @Summary Get a ledger snapshot
// @Description Returns the current balance, its classification and the transaction history
// @Tags Ledger
// @Produce json
// @Param id path string true "Representative ID"
// @Success 200 {object} dto.LedgerSnapshotResponse
// @Router /representatives/{id}/ledger [get]
func (h *LedgerHandler) GetSnapshot(c *gin.Context) {
	representativeID := c.Param("id")

	snapshot, err := h.ledgerService.GetSnapshot(c.Request.Context(), representativeID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLedgerSnapshotResponse(snapshot))
}

// Reconcile godoc
// @Summary Verify ledger integrity
// @Description Recomputes the running-balance chain from full history and reports any divergence
// @Tags Ledger
// @Produce json
// @Param id path string true "Representative ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} ierr.ErrorResponse
// @Router /representatives/{id}/ledger/reconcile [post]
func (h *LedgerHandler) Reconcile(c *gin.Context) {
	representativeID := c.Param("id")

	if err := h.ledgerService.Reconcile(c.Request.Context(), representativeID); err != nil {
		h.log.Errorw("ledger reconciliation failed", "representative_id", representativeID, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "consistent"})
}

// ListInvoices godoc
// @Summary List a representative's invoices
// @Tags Invoices
// @Produce json
// @Param id path string true "Representative ID"
// @Success 200 {object} dto.ListInvoicesResponse
// @Router /representatives/{id}/invoices [get]
func (h *LedgerHandler) ListInvoices(c *gin.Context) {
	representativeID := c.Param("id")

	resp, err := h.invoiceService.ListByRepresentative(c.Request.Context(), representativeID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
