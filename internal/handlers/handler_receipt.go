package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/dto"
	"github.com/recovhq/recov_backend/internal/middleware"
)

// receiptHandler handles HTTP requests related to receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// newReceiptHandler creates a new receiptHandler.
func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerReceiptRoutes registers receipt routes nested under a tenant.
// Receipts are immutable once recorded, so there are no update or delete
// routes; corrections go through ADJUSTMENT vouchers.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.createReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/:receipt_id", h.getReceipt)
	}
}

// createReceipt godoc
// @Summary Record receipt
// @Description Records money received from a customer. Dates use YYYY-MM-DD.
// @Tags receipts
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param receipt body dto.CreateReceiptRequest true "Receipt details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate voucher number"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), c.Param("tenant_id"), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "create receipt")
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// listReceipts godoc
// @Summary List receipts
// @Description Retrieves a cursor-paginated list of receipts, newest first.
// @Tags receipts
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param customerID query string false "Filter by customer"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.receiptService.ListReceipts(c.Request.Context(), c.Param("tenant_id"), requestingUserID, params)
	if err != nil {
		respondWithError(c, err, "list receipts")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getReceipt godoc
// @Summary Get receipt by ID
// @Tags receipts
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param receipt_id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/receipts/{receipt_id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), c.Param("tenant_id"), c.Param("receipt_id"), requestingUserID)
	if err != nil {
		respondWithError(c, err, "receipt")
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}
