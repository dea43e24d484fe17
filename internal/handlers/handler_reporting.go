package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/accounting_core/internal/core/domain"
	portssvc "github.com/finbooks/accounting_core/internal/core/ports/services"
	"github.com/finbooks/accounting_core/internal/dto"
	"github.com/finbooks/accounting_core/internal/middleware"
)

// reportingHandler handles HTTP requests for financial statements and aging
// reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/trial-balance", h.trialBalance)
		reports.POST("/aging/receivables", h.agingReceivables)
		reports.POST("/aging/payables", h.agingPayables)
	}
}

// dateQuery parses a YYYY-MM-DD query parameter, defaulting to today when
// absent. The second return value is false when the value failed to parse and
// a 400 was already written.
func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), true
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, ok := dateQuery(c, "asOf")
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate balance sheet")
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	start, ok := dateQuery(c, "startDate")
	if !ok {
		return
	}
	end, ok := dateQuery(c, "endDate")
	if !ok {
		return
	}
	if start.After(end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must not be after endDate"})
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, logger, err, "Failed to generate income statement")
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, ok := dateQuery(c, "asOf")
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate trial balance")
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) agingReceivables(c *gin.Context) {
	h.aging(c, domain.AgingReceivables)
}

func (h *reportingHandler) agingPayables(c *gin.Context) {
	h.aging(c, domain.AgingPayables)
}

func (h *reportingHandler) aging(c *gin.Context, kind domain.AgingReportKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, ok := dateQuery(c, "asOf")
	if !ok {
		return
	}

	var req dto.AgingReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AgingReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.reportingService.AgingReport(c.Request.Context(), kind, asOf, dto.ToAgingItems(req.Items))
	if err != nil {
		respondError(c, logger, err, "Failed to generate aging report")
		return
	}

	c.JSON(http.StatusOK, report)
}
