package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/accounting_core/internal/core/domain"
	portssvc "github.com/finbooks/accounting_core/internal/core/ports/services"
	"github.com/finbooks/accounting_core/internal/dto"
	"github.com/finbooks/accounting_core/internal/middleware"
)

// journalHandler handles HTTP requests for journal entries and the entry
// lifecycle (approve, post, void, reverse).
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: journalService}

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
		entries.POST("/:id/approve", h.approveEntry)
		entries.POST("/:id/post", h.postEntry)
		entries.POST("/:id/void", h.voidEntry)
		entries.POST("/:id/reverse", h.reverseEntry)
	}
}

func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())
	entry, err := h.journalService.CreateEntry(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to create journal entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *journalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())
	entry, err := h.journalService.UpdateEntry(c.Request.Context(), entryID, req, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to update journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *journalHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	actor := middleware.GetActorFromContext(c.Request.Context())
	if err := h.journalService.DeleteEntry(c.Request.Context(), entryID, actor); err != nil {
		respondError(c, logger, err, "Failed to delete journal entry")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *journalHandler) approveEntry(c *gin.Context) {
	h.transition(c, h.journalService.ApproveEntry, "Failed to approve journal entry")
}

func (h *journalHandler) postEntry(c *gin.Context) {
	h.transition(c, h.journalService.PostEntry, "Failed to post journal entry")
}

func (h *journalHandler) voidEntry(c *gin.Context) {
	h.transition(c, h.journalService.VoidEntry, "Failed to void journal entry")
}

func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	actor := middleware.GetActorFromContext(c.Request.Context())
	reversal, err := h.journalService.ReverseEntry(c.Request.Context(), entryID, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to reverse journal entry")
		return
	}

	// The reversal is a new draft entry, so 201 with its representation.
	c.JSON(http.StatusCreated, dto.ToEntryResponse(reversal))
}

// transition runs one of the single-entry lifecycle operations that share a
// common request/response shape.
func (h *journalHandler) transition(c *gin.Context, op func(ctx context.Context, entryID, actor string) (*domain.JournalEntry, error), fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	actor := middleware.GetActorFromContext(c.Request.Context())
	entry, err := op(c.Request.Context(), entryID, actor)
	if err != nil {
		respondError(c, logger, err, fallbackMsg)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}
