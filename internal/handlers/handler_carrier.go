package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/almacen_erp_lite/internal/core/ports/services"
	"github.com/SscSPs/almacen_erp_lite/internal/dto"
	"github.com/SscSPs/almacen_erp_lite/internal/middleware"
	"github.com/gin-gonic/gin"
)

type carrierHandler struct {
	carrierService portssvc.CarrierSvcFacade
}

func newCarrierHandler(cs portssvc.CarrierSvcFacade) *carrierHandler {
	return &carrierHandler{carrierService: cs}
}

func registerCarrierRoutes(rg *gin.RouterGroup, carrierService portssvc.CarrierSvcFacade) {
	h := newCarrierHandler(carrierService)

	carriers := rg.Group("/carriers")
	{
		carriers.GET("", h.listCarriers)
		carriers.POST("", h.createCarrier)
		carriers.GET("/:id", h.getCarrier)
		carriers.PUT("/:id", h.updateCarrier)
		carriers.DELETE("/:id", h.deleteCarrier)
	}
}

// createCarrier godoc
// @Summary Create a carrier
// @Description Registers a transport provider with its bank details. The tax ID must be unique.
// @Tags carriers
// @Accept json
// @Produce json
// @Param carrier body dto.CreateCarrierRequest true "Carrier details"
// @Success 201 {object} dto.CarrierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /carriers [post]
func (h *carrierHandler) createCarrier(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	carrier, err := h.carrierService.CreateCarrier(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "create carrier")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Carrier created", slog.String("carrier_id", carrier.CarrierID))
	c.JSON(http.StatusCreated, dto.ToCarrierResponse(carrier))
}

// listCarriers godoc
// @Summary List carriers
// @Tags carriers
// @Produce json
// @Param search query string false "Name or tax ID fragment"
// @Param page query int false "Page number, starting at 1"
// @Param perPage query int false "Items per page"
// @Success 200 {object} dto.ListCarriersResponse
// @Security BearerAuth
// @Router /carriers [get]
func (h *carrierHandler) listCarriers(c *gin.Context) {
	var params dto.ListCarriersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.carrierService.ListCarriers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list carriers")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getCarrier godoc
// @Summary Get a carrier
// @Tags carriers
// @Produce json
// @Param id path string true "Carrier ID"
// @Success 200 {object} dto.CarrierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /carriers/{id} [get]
func (h *carrierHandler) getCarrier(c *gin.Context) {
	carrier, err := h.carrierService.GetCarrierByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get carrier")
		return
	}
	c.JSON(http.StatusOK, dto.ToCarrierResponse(carrier))
}

// updateCarrier godoc
// @Summary Update a carrier
// @Description Merges the given fields. An empty interbankCode clears it.
// @Tags carriers
// @Accept json
// @Produce json
// @Param id path string true "Carrier ID"
// @Param carrier body dto.UpdateCarrierRequest true "Fields to change"
// @Success 200 {object} dto.CarrierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /carriers/{id} [put]
func (h *carrierHandler) updateCarrier(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	carrier, err := h.carrierService.UpdateCarrier(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "update carrier")
		return
	}
	c.JSON(http.StatusOK, dto.ToCarrierResponse(carrier))
}

// deleteCarrier godoc
// @Summary Delete a carrier
// @Description Purchases that reference the carrier keep its ID.
// @Tags carriers
// @Param id path string true "Carrier ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /carriers/{id} [delete]
func (h *carrierHandler) deleteCarrier(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.carrierService.DeleteCarrier(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "delete carrier")
		return
	}
	c.Status(http.StatusNoContent)
}
