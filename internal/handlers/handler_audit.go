package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbooks/accounting_core/internal/core/ports/services"
	"github.com/finbooks/accounting_core/internal/middleware"
)

// auditHandler exposes the audit trail to operators.
type auditHandler struct {
	auditService portssvc.AuditSvc
}

// registerAuditRoutes registers routes related to the audit trail.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvc) {
	h := &auditHandler{auditService: auditService}

	rg.GET("/audit-logs", h.listAuditLogs)
}

func (h *auditHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.auditService.ListAuditLogs(c.Request.Context(), limit)
	if err != nil {
		respondError(c, logger, err, "Failed to list audit logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"auditLogs": logs})
}
