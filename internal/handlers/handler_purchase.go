package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	portssvc "github.com/SscSPs/almacen_erp_lite/internal/core/ports/services"
	"github.com/SscSPs/almacen_erp_lite/internal/dto"
	"github.com/SscSPs/almacen_erp_lite/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests related to purchases and their transport.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes registers all purchase-related routes.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.GET("", h.listPurchases)
		purchases.POST("", h.createPurchase)
		purchases.GET("/statuses", h.listStatuses)
		purchases.GET("/:id", h.getPurchase)
		purchases.PUT("/:id", h.updatePurchase)
		purchases.DELETE("/:id", h.deletePurchase)
		purchases.PUT("/:id/transport", h.assignTransport)
		purchases.DELETE("/:id/transport", h.unassignTransport)
	}
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Creates a purchase with the next code of the year. The balance is totalCost minus advance.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown supplier"
// @Failure 409 {object} dto.ErrorResponse "Code collision"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "create purchase")
		return
	}

	logger.Info("Purchase created", slog.String("purchase_id", purchase.PurchaseID), slog.String("code", purchase.Code))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// listPurchases godoc
// @Summary List purchases
// @Description Filters by free text, raw material, status and an inclusive purchase date range. Sorted by code, newest first.
// @Tags purchases
// @Produce json
// @Param search query string false "Matches code, raw material, supplier and carrier names or tax IDs"
// @Param rawMaterial query string false "Raw material fragment"
// @Param serviceStatus query string false "Exact workflow stage"
// @Param from query string false "First purchase date (YYYY-MM-DD)"
// @Param to query string false "Last purchase date (YYYY-MM-DD)"
// @Param page query int false "Page number, starting at 1"
// @Param perPage query int false "Items per page"
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	var params dto.ListPurchasesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list purchases")
		return
	}
	c.JSON(http.StatusOK, res)
}

// listStatuses godoc
// @Summary List workflow stages
// @Description Returns the purchase service statuses in workflow order.
// @Tags purchases
// @Produce json
// @Success 200 {object} dto.ServiceStatusesResponse
// @Security BearerAuth
// @Router /purchases/statuses [get]
func (h *purchaseHandler) listStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceStatusesResponse{Statuses: domain.ServiceStatuses()})
}

// getPurchase godoc
// @Summary Get a purchase
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get purchase")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// updatePurchase godoc
// @Summary Update a purchase
// @Description Merges the given fields. Changing totalCost or advance re-derives the balance.
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param purchase body dto.UpdatePurchaseRequest true "Fields to change"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [put]
func (h *purchaseHandler) updatePurchase(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	purchase, err := h.purchaseService.UpdatePurchase(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "update purchase")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Tags purchases
// @Param id path string true "Purchase ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	purchaseID := c.Param("id")
	if err := h.purchaseService.DeletePurchase(c.Request.Context(), purchaseID, userID); err != nil {
		respondError(c, err, "delete purchase")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Purchase deleted", slog.String("purchase_id", purchaseID))
	c.Status(http.StatusNoContent)
}

// assignTransport godoc
// @Summary Assign a carrier
// @Description Attaches a carrier and its service window to the purchase. The end date may not precede the start date.
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param transport body dto.AssignTransportRequest true "Carrier and dates"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id}/transport [put]
func (h *purchaseHandler) assignTransport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AssignTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	purchase, err := h.purchaseService.AssignTransport(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "assign transport")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// unassignTransport godoc
// @Summary Remove the carrier
// @Description Clears the carrier and both transport dates.
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id}/transport [delete]
func (h *purchaseHandler) unassignTransport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	purchase, err := h.purchaseService.UnassignTransport(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "unassign transport")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}
