package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/dto"
	"github.com/assetverse/assetverse_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles HTTP requests for the asset inventory.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{assetService: as}
}

// RegisterAssetRoutes registers the HR inventory routes.
func RegisterAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:assetID", h.getAsset)
		assets.PATCH("/:assetID", h.updateAsset)
		assets.DELETE("/:assetID", h.deleteAsset)
	}
}

// registerEmployeeAssetRoutes registers the employee-facing catalog route.
func registerEmployeeAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)
	rg.GET("/assets", h.listAvailableAssets)
}

// toAssetFilters maps the query params onto repository filters.
func toAssetFilters(params dto.ListAssetsParams) portsrepo.AssetListFilters {
	return portsrepo.AssetListFilters{
		Search:        params.Search,
		ProductType:   params.Type,
		OnlyAvailable: params.Availability == "available",
		OnlyDepleted:  params.Availability == "out-of-stock",
		Page:          params.Page,
		Limit:         params.Limit,
	}
}

// createAsset godoc
// @Summary Add an asset
// @Description Adds a new asset to the tenant's inventory. Availability starts equal to the quantity.
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), hr, req)
	if err != nil {
		logger.Error("Failed to create asset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create asset"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List tenant assets
// @Description Retrieves a page of the tenant's assets, optionally filtered by search, type and availability.
// @Tags assets
// @Produce json
// @Param search query string false "Substring match on product name"
// @Param type query string false "Product type filter"
// @Param availability query string false "available or out-of-stock"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	assets, total, err := h.assetService.ListAssets(c.Request.Context(), hr.Email, toAssetFilters(params))
	if err != nil {
		logger.Error("Failed to list assets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list assets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetsResponse(assets, total, params.Page, params.Limit))
}

// listAvailableAssets godoc
// @Summary List requestable assets
// @Description Retrieves the catalog an employee can request from. Affiliated employees see their company's inventory; unaffiliated employees see every company's.
// @Tags assets
// @Produce json
// @Param search query string false "Substring match on product name"
// @Param type query string false "Product type filter"
// @Param availability query string false "available or out-of-stock"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/assets [get]
func (h *assetHandler) listAvailableAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employee, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	assets, total, err := h.assetService.ListAvailableAssets(c.Request.Context(), employee.Email, toAssetFilters(params))
	if err != nil {
		logger.Error("Failed to list available assets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list assets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetsResponse(assets, total, params.Page, params.Limit))
}

// getAsset godoc
// @Summary Get an asset
// @Description Retrieves one asset owned by the tenant.
// @Tags assets
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/assets/{assetID} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), c.Param("assetID"), hr.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Asset not found"})
			return
		}
		logger.Error("Failed to get asset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve asset"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// updateAsset godoc
// @Summary Update an asset
// @Description Updates asset fields. Changing the total quantity shifts the available quantity by the same delta; reductions below the number of assigned units are rejected.
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param asset body dto.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Quantity below assigned units"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/assets/{assetID} [patch]
func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), c.Param("assetID"), hr.Email, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Asset not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update asset", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update asset"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// deleteAsset godoc
// @Summary Delete an asset
// @Description Removes an asset from the tenant's inventory.
// @Tags assets
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/assets/{assetID} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.assetService.DeleteAsset(c.Request.Context(), c.Param("assetID"), hr.Email); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Asset not found"})
			return
		}
		logger.Error("Failed to delete asset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete asset"})
		return
	}

	c.Status(http.StatusNoContent)
}
