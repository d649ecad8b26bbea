package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/dto"
	"github.com/assetverse/assetverse_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// analyticsHandler serves the tenant dashboard.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsService
}

func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsService) {
	h := &analyticsHandler{analyticsService: analyticsService}
	rg.GET("/analytics", h.getSummary)
}

// getSummary godoc
// @Summary Tenant analytics
// @Description Retrieves the dashboard summary: asset type distribution, most requested assets and request counters.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/analytics [get]
func (h *analyticsHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.analyticsService.GetSummary(c.Request.Context(), hr.Email)
	if err != nil {
		logger.Error("Failed to build analytics summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(summary))
}
