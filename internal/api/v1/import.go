package v1

import (
	"net/http"

	"github.com/Iscgrou/repbill/internal/api/dto"
	"github.com/Iscgrou/repbill/internal/domain/usage"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/logger"
	"github.com/Iscgrou/repbill/internal/service"
	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	service service.ImportService
	log     *logger.Logger
}

func NewImportHandler(service service.ImportService, log *logger.Logger) *ImportHandler {
	return &ImportHandler{service: service, log: log}
}

// ProcessTabular godoc
// @Summary Import a tabular usage batch
// @Description Processes a spreadsheet-style batch of positional rows into invoices and ledger debits
// @Tags Imports
// @Accept json
// @Produce json
// @Param request body dto.TabularImportRequest true "Tabular batch"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /imports/tabular [post]
func (h *ImportHandler) ProcessTabular(c *gin.Context) {
	var req dto.TabularImportRequest
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

	result, err := h.service.ProcessTabular(c.Request.Context(), req.Rows)
	if err != nil {
		h.log.Errorw("tabular import failed", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ProcessCSV godoc
// @Summary Import a tabular usage batch from a CSV file
// @Description Accepts a multipart CSV upload and processes it as a tabular batch
// @Tags Imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /imports/csv [post]
func (h *ImportHandler) ProcessCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("A CSV file upload is required").
			Mark(ierr.ErrValidation))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read uploaded file").
			Mark(ierr.ErrValidation))
		return
	}
	defer file.Close()

	rows, err := usage.ReadTabular(file)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.service.ProcessTabular(c.Request.Context(), rows)
	if err != nil {
		h.log.Errorw("csv import failed", "filename", fileHeader.Filename, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ProcessStructured godoc
// @Summary Import a structured usage batch
// @Description Processes a batch of key-value records into invoices and ledger debits
// @Tags Imports
// @Accept json
// @Produce json
// @Param request body dto.StructuredImportRequest true "Structured batch"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /imports/structured [post]
func (h *ImportHandler) ProcessStructured(c *gin.Context) {
	var req dto.StructuredImportRequest
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

	result, err := h.service.ProcessStructured(c.Request.Context(), req.Records)
	if err != nil {
		h.log.Errorw("structured import failed", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
