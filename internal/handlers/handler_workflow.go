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

// workflowHandler handles HTTP requests for the request/assignment lifecycle.
type workflowHandler struct {
	workflowService portssvc.WorkflowSvcFacade
}

func newWorkflowHandler(ws portssvc.WorkflowSvcFacade) *workflowHandler {
	return &workflowHandler{workflowService: ws}
}

// registerTenantWorkflowRoutes registers the HR side of the lifecycle.
func registerTenantWorkflowRoutes(rg *gin.RouterGroup, workflowService portssvc.WorkflowSvcFacade) {
	h := newWorkflowHandler(workflowService)

	requests := rg.Group("/requests")
	{
		requests.GET("", h.listTenantRequests)
		requests.POST("/:requestID/approve", h.approveRequest)
		requests.POST("/:requestID/reject", h.rejectRequest)
	}
	rg.POST("/assignments", h.directAssign)
}

// registerEmployeeWorkflowRoutes registers the employee side of the lifecycle.
func registerEmployeeWorkflowRoutes(rg *gin.RouterGroup, workflowService portssvc.WorkflowSvcFacade) {
	h := newWorkflowHandler(workflowService)

	rg.POST("/requests", h.createRequest)
	rg.GET("/requests", h.listMyRequests)
	rg.GET("/my-assets", h.listMyAssets)
	rg.POST("/assignments/:assignmentID/return", h.returnAsset)
}

func toRequestFilters(params dto.ListRequestsParams) portsrepo.RequestListFilters {
	return portsrepo.RequestListFilters{
		Status: params.Status,
		Search: params.Search,
		Page:   params.Page,
		Limit:  params.Limit,
	}
}

// createRequest godoc
// @Summary Request an asset
// @Description Files a pending request for one unit of an asset. Depleted assets are rejected up front.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Request details"
// @Success 201 {object} dto.RequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Failure 409 {object} ErrorResponse "No units available or duplicate pending request"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/requests [post]
func (h *workflowHandler) createRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employee, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	request, err := h.workflowService.CreateRequest(c.Request.Context(), employee, req.AssetID, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Asset not found"})
		case errors.Is(err, apperrors.ErrUnavailable), errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create request"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(request))
}

// listTenantRequests godoc
// @Summary List tenant requests
// @Description Retrieves a page of requests targeting the tenant, optionally filtered by status and requester.
// @Tags requests
// @Produce json
// @Param status query string false "pending, approved, rejected or returned"
// @Param search query string false "Substring match on requester name or email"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListRequestsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/requests [get]
func (h *workflowHandler) listTenantRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requests, total, err := h.workflowService.ListTenantRequests(c.Request.Context(), hr.Email, toRequestFilters(params))
	if err != nil {
		logger.Error("Failed to list requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRequestsResponse(requests, total, params.Page, params.Limit))
}

// listMyRequests godoc
// @Summary List own requests
// @Description Retrieves a page of the employee's own requests across all states.
// @Tags requests
// @Produce json
// @Param status query string false "pending, approved, rejected or returned"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListRequestsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/requests [get]
func (h *workflowHandler) listMyRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employee, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requests, total, err := h.workflowService.ListMyRequests(c.Request.Context(), employee.Email, toRequestFilters(params))
	if err != nil {
		logger.Error("Failed to list own requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRequestsResponse(requests, total, params.Page, params.Limit))
}

// listMyAssets godoc
// @Summary List own assets
// @Description Retrieves a page of assets the employee currently or previously held.
// @Tags assignments
// @Produce json
// @Param search query string false "Substring match on asset name"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListAssignedAssetsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/my-assets [get]
func (h *workflowHandler) listMyAssets(c *gin.Context) {
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

	assets, total, err := h.workflowService.ListMyAssets(c.Request.Context(), employee.Email, toAssetFilters(params))
	if err != nil {
		logger.Error("Failed to list assigned assets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list assets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssignedAssetsResponse(assets, total, params.Page, params.Limit))
}

// approveRequest godoc
// @Summary Approve a request
// @Description Approves a pending request: consumes one unit of availability, creates the assignment and, on the employee's first approval, the affiliation.
// @Tags requests
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Not pending, no stock, employee limit reached or affiliated elsewhere"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/requests/{requestID}/approve [post]
func (h *workflowHandler) approveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	requestID := c.Param("requestID")
	if err := h.workflowService.ApproveRequest(c.Request.Context(), requestID, hr); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Request not found"})
		case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrUnavailable):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to approve request", slog.String("error", err.Error()), slog.String("request_id", requestID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to approve request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request approved"})
}

// rejectRequest godoc
// @Summary Reject a request
// @Description Rejects a pending request with an optional reason. No availability is consumed.
// @Tags requests
// @Accept json
// @Produce json
// @Param requestID path string true "Request ID"
// @Param rejection body dto.RejectRequestRequest false "Rejection reason"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request is not pending"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/requests/{requestID}/reject [post]
func (h *workflowHandler) rejectRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// Body is optional; a bare POST rejects without a reason.
	var req dto.RejectRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
			return
		}
	}

	requestID := c.Param("requestID")
	if err := h.workflowService.RejectRequest(c.Request.Context(), requestID, hr, req.Reason); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Request not found"})
		case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to reject request", slog.String("error", err.Error()), slog.String("request_id", requestID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reject request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request rejected"})
}

// directAssign godoc
// @Summary Assign an asset directly
// @Description Hands one unit straight to an already-affiliated employee, recording a pre-approved request for the audit trail.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body dto.DirectAssignRequest true "Asset and employee"
// @Success 201 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Asset or affiliation not found"
// @Failure 409 {object} ErrorResponse "No stock or employee already holds this asset"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/assignments [post]
func (h *workflowHandler) directAssign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.DirectAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	assignment, err := h.workflowService.DirectAssign(c.Request.Context(), hr, req.AssetID, req.EmployeeEmail)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrUnavailable), errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to assign asset", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to assign asset"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"assignmentID":  assignment.AssignmentID,
		"assetID":       assignment.AssetID,
		"employeeEmail": assignment.EmployeeEmail,
		"status":        string(assignment.Status),
	})
}

// returnAsset godoc
// @Summary Return an asset
// @Description Marks a held assignment returned, restoring one unit of the asset's availability. Only the holding employee may return.
// @Tags assignments
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "No active assignment"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/assignments/{assignmentID}/return [post]
func (h *workflowHandler) returnAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employee, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	assignmentID := c.Param("assignmentID")
	if err := h.workflowService.ReturnAsset(c.Request.Context(), assignmentID, employee.Email); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Active assignment not found"})
			return
		}
		logger.Error("Failed to return asset", slog.String("error", err.Error()), slog.String("assignment_id", assignmentID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to return asset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset returned"})
}
