package v1

import (
	"net/http"

	"github.com/Iscgrou/repbill/internal/api/dto"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/logger"
	"github.com/Iscgrou/repbill/internal/service"
	"github.com/gin-gonic/gin"
)

type RepresentativeHandler struct {
	service service.RepresentativeService
	log     *logger.Logger
}

func NewRepresentativeHandler(service service.RepresentativeService, log *logger.Logger) *RepresentativeHandler {
	return &RepresentativeHandler{service: service, log: log}
}

// CreateRepresentative godoc
// @Summary Create a representative
// @Description Registers a reseller account with its pricing profile
// @Tags Representatives
// @Accept json
// @Produce json
// @Param request body dto.CreateRepresentativeRequest true "Representative"
// @Success 201 {object} dto.RepresentativeResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /representatives [post]
func (h *RepresentativeHandler) CreateRepresentative(c *gin.Context) {
	var req dto.CreateRepresentativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRepresentative(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("representative creation failed", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetRepresentative godoc
// @Summary Get a representative
// @Tags Representatives
// @Produce json
// @Param id path string true "Representative ID"
// @Success 200 {object} dto.RepresentativeResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /representatives/{id} [get]
func (h *RepresentativeHandler) GetRepresentative(c *gin.Context) {
	resp, err := h.service.GetRepresentative(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListRepresentatives godoc
// @Summary List representatives
// @Tags Representatives
// @Produce json
// @Success 200 {object} dto.ListRepresentativesResponse
// @Router /representatives [get]
func (h *RepresentativeHandler) ListRepresentatives(c *gin.Context) {
	resp, err := h.service.ListRepresentatives(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePricing godoc
// @Summary Update a pricing profile
// @Description Replaces the per-tier rates used when pricing this representative's usage
// @Tags Representatives
// @Accept json
// @Produce json
// @Param id path string true "Representative ID"
// @Param request body dto.UpdatePricingRequest true "Pricing profile"
// @Success 200 {object} dto.RepresentativeResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /representatives/{id}/pricing [put]
func (h *RepresentativeHandler) UpdatePricing(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdatePricing(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Errorw("pricing update failed", "representative_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
