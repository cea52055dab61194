package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recovhq/recov_backend/internal/core/domain"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/dto"
	"github.com/recovhq/recov_backend/internal/middleware"
)

// followUpHandler handles HTTP requests related to collection follow-ups.
type followUpHandler struct {
	followUpService portssvc.FollowUpSvcFacade
}

// newFollowUpHandler creates a new followUpHandler.
func newFollowUpHandler(fs portssvc.FollowUpSvcFacade) *followUpHandler {
	return &followUpHandler{followUpService: fs}
}

// registerFollowUpRoutes registers follow-up routes nested under a tenant.
func registerFollowUpRoutes(rg *gin.RouterGroup, followUpService portssvc.FollowUpSvcFacade) {
	h := newFollowUpHandler(followUpService)

	followUps := rg.Group("/followups")
	{
		followUps.POST("", h.createFollowUp)
		followUps.GET("", h.listFollowUps)
		followUps.GET("/:followup_id", h.getFollowUp)
		followUps.POST("/:followup_id/complete", h.completeFollowUp)
		followUps.DELETE("/:followup_id", h.deleteFollowUp)
	}
}

// createFollowUp godoc
// @Summary Schedule follow-up
// @Description Schedules a collection follow-up against a customer.
// @Tags followups
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param followup body dto.CreateFollowUpRequest true "Follow-up details"
// @Success 201 {object} dto.FollowUpResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/followups [post]
func (h *followUpHandler) createFollowUp(c *gin.Context) {
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	followUp, err := h.followUpService.CreateFollowUp(c.Request.Context(), c.Param("tenant_id"), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "create follow-up")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFollowUpResponse(followUp))
}

// listFollowUps godoc
// @Summary List follow-ups
// @Tags followups
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param status query string false "Filter by status" Enums(PENDING, COMPLETED)
// @Success 200 {object} dto.ListFollowUpsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/followups [get]
func (h *followUpHandler) listFollowUps(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListFollowUpsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var status *domain.FollowUpStatus
	if params.Status != nil {
		s := domain.FollowUpStatus(*params.Status)
		status = &s
	}

	followUps, err := h.followUpService.ListFollowUps(c.Request.Context(), c.Param("tenant_id"), requestingUserID, status)
	if err != nil {
		respondWithError(c, err, "list follow-ups")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFollowUpsResponse(followUps))
}

// getFollowUp godoc
// @Summary Get follow-up by ID
// @Tags followups
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param followup_id path string true "Follow-up ID"
// @Success 200 {object} dto.FollowUpResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/followups/{followup_id} [get]
func (h *followUpHandler) getFollowUp(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	followUp, err := h.followUpService.GetFollowUpByID(c.Request.Context(), c.Param("tenant_id"), c.Param("followup_id"), requestingUserID)
	if err != nil {
		respondWithError(c, err, "follow-up")
		return
	}

	c.JSON(http.StatusOK, dto.ToFollowUpResponse(followUp))
}

// completeFollowUp godoc
// @Summary Complete follow-up
// @Description Marks a pending follow-up as completed.
// @Tags followups
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param followup_id path string true "Follow-up ID"
// @Success 200 {object} dto.FollowUpResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already completed"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/followups/{followup_id}/complete [post]
func (h *followUpHandler) completeFollowUp(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	followUp, err := h.followUpService.CompleteFollowUp(c.Request.Context(), c.Param("tenant_id"), c.Param("followup_id"), requestingUserID)
	if err != nil {
		respondWithError(c, err, "complete follow-up")
		return
	}

	c.JSON(http.StatusOK, dto.ToFollowUpResponse(followUp))
}

// deleteFollowUp godoc
// @Summary Delete follow-up
// @Description Removes a pending follow-up. Completed follow-ups cannot be deleted.
// @Tags followups
// @Param tenant_id path string true "Tenant ID"
// @Param followup_id path string true "Follow-up ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/followups/{followup_id} [delete]
func (h *followUpHandler) deleteFollowUp(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.followUpService.DeleteFollowUp(c.Request.Context(), c.Param("tenant_id"), c.Param("followup_id"), requestingUserID); err != nil {
		respondWithError(c, err, "delete follow-up")
		return
	}

	c.Status(http.StatusNoContent)
}
