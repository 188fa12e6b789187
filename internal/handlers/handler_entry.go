package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealthfolio/networth_backend/internal/apperrors"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/dto"
	"github.com/wealthfolio/networth_backend/internal/middleware"
)

// entryHandler serves one entry collection. It is registered twice, once at
// /assets and once at /debts, backed by the matching service instance.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

// RegisterEntryRoutes registers the CRUD routes for one entry collection.
func RegisterEntryRoutes(rg *gin.RouterGroup, path string, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group(path)
	{
		entries.GET("", h.listEntries)
		entries.POST("", h.createEntry)
		entries.PUT("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
	}
}

// listEntries godoc
// @Summary List entries
// @Description Retrieves all of the authenticated user's entries in this collection
// @Tags entries
// @Produce json
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list entries",
			slog.String("kind", string(h.entryService.Kind())),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// createEntry godoc
// @Summary Create an entry
// @Description Adds a new entry to this collection for the authenticated user
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create entry",
			slog.String("kind", string(h.entryService.Kind())),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create entry"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update an entry
// @Description Applies the provided fields to one of the authenticated user's entries
// @Tags entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets/{entryID} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	entryID := c.Param("entryID")

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), ownerID, entryID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update entry",
				slog.String("kind", string(h.entryService.Kind())),
				slog.String("entry_id", entryID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Description Removes one of the authenticated user's entries
// @Tags entries
// @Param entryID path string true "Entry ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	entryID := c.Param("entryID")

	if err := h.entryService.DeleteEntry(c.Request.Context(), ownerID, entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry not found"})
			return
		}
		logger.Error("Failed to delete entry",
			slog.String("kind", string(h.entryService.Kind())),
			slog.String("entry_id", entryID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete entry"})
		return
	}

	c.Status(http.StatusNoContent)
}
