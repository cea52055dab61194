package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recovhq/recov_backend/internal/core/domain"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/dto"
	"github.com/recovhq/recov_backend/internal/middleware"
)

// tenantHandler handles HTTP requests related to tenants and their members.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

// newTenantHandler creates a new tenantHandler.
func newTenantHandler(ts portssvc.TenantSvcFacade) *tenantHandler {
	return &tenantHandler{tenantService: ts}
}

// registerTenantRoutes registers routes related to tenants and their members.
// It also registers CUSTOMER, INVOICE, RECEIPT, FOLLOW-UP, and REPORT routes
// nested under a specific tenant.
func registerTenantRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newTenantHandler(services.Tenant)

	// Routes for managing tenants themselves (e.g., creating, listing user's tenants)
	tenantsTopLevel := rg.Group("/tenants")
	{
		tenantsTopLevel.POST("", h.createTenant)
		tenantsTopLevel.GET("", h.listUserTenants) // List tenants the calling user belongs to
	}

	// Routes specific to a single tenant (identified by tenant_id)
	tenantSpecific := rg.Group("/tenants/:tenant_id")
	{
		tenantSpecific.GET("", h.getTenant)
		tenantSpecific.POST("/activate", h.activateTenant)
		tenantSpecific.POST("/deactivate", h.deactivateTenant)

		// Manage users within a tenant
		tenantUsers := tenantSpecific.Group("/users")
		{
			tenantUsers.GET("", h.listTenantUsers)
			tenantUsers.POST("", h.addUserToTenant)
			tenantUsers.DELETE("/:user_id", h.removeUserFromTenant)
			tenantUsers.PUT("/:user_id/role", h.updateUserTenantRole)
		}

		registerCustomerRoutes(tenantSpecific, services.Customer)
		registerInvoiceRoutes(tenantSpecific, services.Invoice)
		registerReceiptRoutes(tenantSpecific, services.Receipt)
		registerFollowUpRoutes(tenantSpecific, services.FollowUp)
		RegisterReportRoutes(tenantSpecific, services.Debtors, services.Ledger, services.Scorecard)
	}
}

// createTenant godoc
// @Summary Create tenant
// @Description Creates a new tenant; the creator becomes its ADMIN.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req.Name, req.Description, creatorUserID)
	if err != nil {
		respondWithError(c, err, "create tenant")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// listUserTenants godoc
// @Summary List the caller's tenants
// @Tags tenants
// @Produce json
// @Param includeDisabled query bool false "Include deactivated tenants" default(false)
// @Success 200 {object} dto.ListTenantsResponse
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listUserTenants(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	includeDisabled := c.Query("includeDisabled") == "true"
	tenants, err := h.tenantService.ListUserTenants(c.Request.Context(), userID, includeDisabled)
	if err != nil {
		respondWithError(c, err, "list tenants")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTenantsResponse(tenants))
}

// getTenant godoc
// @Summary Get tenant by ID
// @Tags tenants
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	tenant, err := h.tenantService.FindTenantByID(c.Request.Context(), c.Param("tenant_id"))
	if err != nil {
		respondWithError(c, err, "tenant")
		return
	}

	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// activateTenant godoc
// @Summary Activate tenant
// @Tags tenants
// @Param tenant_id path string true "Tenant ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/activate [post]
func (h *tenantHandler) activateTenant(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tenantService.ActivateTenant(c.Request.Context(), c.Param("tenant_id"), requestingUserID); err != nil {
		respondWithError(c, err, "activate tenant")
		return
	}

	c.Status(http.StatusNoContent)
}

// deactivateTenant godoc
// @Summary Deactivate tenant
// @Tags tenants
// @Param tenant_id path string true "Tenant ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/deactivate [post]
func (h *tenantHandler) deactivateTenant(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tenantService.DeactivateTenant(c.Request.Context(), c.Param("tenant_id"), requestingUserID); err != nil {
		respondWithError(c, err, "deactivate tenant")
		return
	}

	c.Status(http.StatusNoContent)
}

// listTenantUsers godoc
// @Summary List tenant members
// @Tags tenants
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.ListTenantUsersResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/users [get]
func (h *tenantHandler) listTenantUsers(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	memberships, err := h.tenantService.ListTenantUsers(c.Request.Context(), c.Param("tenant_id"), requestingUserID)
	if err != nil {
		respondWithError(c, err, "list tenant users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTenantUsersResponse(memberships))
}

// addUserToTenant godoc
// @Summary Add user to tenant
// @Description Adds a user to the tenant with a role. Requires ADMIN.
// @Tags tenants
// @Accept json
// @Param tenant_id path string true "Tenant ID"
// @Param membership body dto.AddUserToTenantRequest true "User and role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/users [post]
func (h *tenantHandler) addUserToTenant(c *gin.Context) {
	addingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddUserToTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.tenantService.AddUserToTenant(c.Request.Context(), addingUserID, req.UserID, c.Param("tenant_id"), req.Role); err != nil {
		respondWithError(c, err, "add user to tenant")
		return
	}

	c.Status(http.StatusNoContent)
}

// removeUserFromTenant godoc
// @Summary Remove user from tenant
// @Description Removes a user from the tenant. Requires ADMIN; self-removal is rejected.
// @Tags tenants
// @Param tenant_id path string true "Tenant ID"
// @Param user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/users/{user_id} [delete]
func (h *tenantHandler) removeUserFromTenant(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tenantService.RemoveUserFromTenant(c.Request.Context(), requestingUserID, c.Param("user_id"), c.Param("tenant_id")); err != nil {
		respondWithError(c, err, "remove user from tenant")
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateUserRoleRequest defines the body for changing a member's role.
type UpdateUserRoleRequest struct {
	Role domain.UserTenantRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// updateUserTenantRole godoc
// @Summary Update a member's role
// @Description Changes a user's role within the tenant. Requires ADMIN.
// @Tags tenants
// @Accept json
// @Param tenant_id path string true "Tenant ID"
// @Param user_id path string true "User ID"
// @Param role body UpdateUserRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/users/{user_id}/role [put]
func (h *tenantHandler) updateUserTenantRole(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.tenantService.UpdateUserTenantRole(c.Request.Context(), requestingUserID, c.Param("user_id"), c.Param("tenant_id"), req.Role); err != nil {
		respondWithError(c, err, "update user role")
		return
	}

	c.Status(http.StatusNoContent)
}
