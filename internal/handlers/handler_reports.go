package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/dto"
	"github.com/recovhq/recov_backend/internal/middleware"
)

// reportHandler handles the receivables reports: the debtors report, customer
// ledger statements, and payment scorecards.
type reportHandler struct {
	debtorsService   portssvc.DebtorsSvcFacade
	ledgerService    portssvc.LedgerSvcFacade
	scorecardService portssvc.ScorecardSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(ds portssvc.DebtorsSvcFacade, ls portssvc.LedgerSvcFacade, ss portssvc.ScorecardSvcFacade) *reportHandler {
	return &reportHandler{
		debtorsService:   ds,
		ledgerService:    ls,
		scorecardService: ss,
	}
}

// RegisterReportRoutes registers report routes nested under a tenant group.
func RegisterReportRoutes(rg *gin.RouterGroup, ds portssvc.DebtorsSvcFacade, ls portssvc.LedgerSvcFacade, ss portssvc.ScorecardSvcFacade) {
	h := newReportHandler(ds, ls, ss)

	rg.GET("/reports/debtors", h.getDebtorsReport)
	rg.GET("/customers/:customer_id/ledger", h.getCustomerLedger)
	rg.GET("/customers/:customer_id/scorecard", h.getCustomerScorecard)
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. A nil result
// with nil error means the parameter was absent.
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// getDebtorsReport godoc
// @Summary Debtors report
// @Description Aggregates per-customer outstanding balances as of a date, grouped by customer category with aging buckets.
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.DebtorsReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/debtors [get]
func (h *reportHandler) getDebtorsReport(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asOfPtr, err := parseDateQuery(c, "asOf")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid asOf date, expected YYYY-MM-DD"})
		return
	}
	asOf := time.Now().UTC().Truncate(24 * time.Hour)
	if asOfPtr != nil {
		asOf = *asOfPtr
	}

	report, err := h.debtorsService.DebtorsReport(c.Request.Context(), c.Param("tenant_id"), asOf, requestingUserID)
	if err != nil {
		respondWithError(c, err, "build debtors report")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtorsReportResponse(report))
}

// getCustomerLedger godoc
// @Summary Customer ledger statement
// @Description Builds the chronological statement of one customer over an optional date range, with opening and closing balances.
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param customer_id path string true "Customer ID"
// @Param fromDate query string false "Range start (YYYY-MM-DD), inclusive"
// @Param toDate query string false "Range end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.LedgerStatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/customers/{customer_id}/ledger [get]
func (h *reportHandler) getCustomerLedger(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fromDate, err := parseDateQuery(c, "fromDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid fromDate, expected YYYY-MM-DD"})
		return
	}
	toDate, err := parseDateQuery(c, "toDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid toDate, expected YYYY-MM-DD"})
		return
	}
	if fromDate != nil && toDate != nil && toDate.Before(*fromDate) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "toDate must not be before fromDate"})
		return
	}

	statement, err := h.ledgerService.CustomerLedger(c.Request.Context(), c.Param("tenant_id"), c.Param("customer_id"), fromDate, toDate, requestingUserID)
	if err != nil {
		respondWithError(c, err, "build customer ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerStatementResponse(statement))
}

// getCustomerScorecard godoc
// @Summary Customer payment scorecard
// @Description Computes a customer's payment behaviour scorecard as of a date.
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param customer_id path string true "Customer ID"
// @Param asOf query string false "Evaluation date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.ScorecardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/customers/{customer_id}/scorecard [get]
func (h *reportHandler) getCustomerScorecard(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asOfPtr, err := parseDateQuery(c, "asOf")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid asOf date, expected YYYY-MM-DD"})
		return
	}
	asOf := time.Now().UTC().Truncate(24 * time.Hour)
	if asOfPtr != nil {
		asOf = *asOfPtr
	}

	scorecard, err := h.scorecardService.CustomerScorecard(c.Request.Context(), c.Param("tenant_id"), c.Param("customer_id"), asOf, requestingUserID)
	if err != nil {
		respondWithError(c, err, "build customer scorecard")
		return
	}

	c.JSON(http.StatusOK, dto.ToScorecardResponse(scorecard))
}
