package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wealthfolio/networth_backend/internal/apperrors"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/dto"
	"github.com/wealthfolio/networth_backend/internal/middleware"
)

// netWorthHandler serves the append-only net-worth history.
type netWorthHandler struct {
	netWorthService portssvc.NetWorthSvcFacade
}

func newNetWorthHandler(ns portssvc.NetWorthSvcFacade) *netWorthHandler {
	return &netWorthHandler{netWorthService: ns}
}

// registerNetWorthRoutes registers snapshot and history routes.
func registerNetWorthRoutes(rg *gin.RouterGroup, netWorthService portssvc.NetWorthSvcFacade) {
	h := newNetWorthHandler(netWorthService)

	networth := rg.Group("/networth")
	{
		networth.POST("/snapshots", h.createSnapshot)
		networth.GET("/history", h.listHistory)
	}
}

// createSnapshot godoc
// @Summary Record a net-worth snapshot
// @Description Computes the authenticated user's current totals in the requested
// @Description base currency and appends them to the history
// @Tags networth
// @Accept json
// @Produce json
// @Param snapshot body dto.CreateSnapshotRequest true "Snapshot parameters"
// @Success 201 {object} dto.NetWorthRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /networth/snapshots [post]
func (h *netWorthHandler) createSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	record, err := h.netWorthService.CreateSnapshot(c.Request.Context(), ownerID, req.BaseCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create net-worth snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create snapshot"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToNetWorthRecordResponse(record))
}

// listHistory godoc
// @Summary List net-worth history
// @Description Retrieves the authenticated user's snapshots in chronological order
// @Tags networth
// @Produce json
// @Param since query string false "Only records on or after this date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListNetWorthHistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /networth/history [get]
func (h *netWorthHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListSnapshotsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var since time.Time
	if params.Since != "" {
		parsed, err := time.Parse("2006-01-02", params.Since)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'since' date, expected YYYY-MM-DD"})
			return
		}
		since = parsed
	}

	records, err := h.netWorthService.ListHistory(c.Request.Context(), ownerID, since)
	if err != nil {
		logger.Error("Failed to list net-worth history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListNetWorthHistoryResponse(records))
}
