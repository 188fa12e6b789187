package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealthfolio/networth_backend/internal/apperrors"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/middleware"
)

// reportingHandler serves the dashboard summary.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reporting := rg.Group("/reporting")
	{
		reporting.GET("/summary", h.getSummary)
	}
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Returns totals by category, overall totals, and net worth for the
// @Description authenticated user, converted to the requested display currency
// @Tags reporting
// @Produce json
// @Param currency query string false "Display currency code (default USD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reporting/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	displayCurrency := c.DefaultQuery("currency", "USD")

	summary, err := h.reportingService.Summary(c.Request.Context(), ownerID, displayCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build summary",
			slog.String("display_currency", displayCurrency),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
