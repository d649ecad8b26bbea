package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/dto"
	"github.com/assetverse/assetverse_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// affiliationHandler handles HTTP requests for tenant membership.
type affiliationHandler struct {
	affiliationService portssvc.AffiliationSvcFacade
}

func newAffiliationHandler(as portssvc.AffiliationSvcFacade) *affiliationHandler {
	return &affiliationHandler{affiliationService: as}
}

// registerAffiliationRoutes registers the HR membership routes.
func registerAffiliationRoutes(rg *gin.RouterGroup, affiliationService portssvc.AffiliationSvcFacade) {
	h := newAffiliationHandler(affiliationService)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.GET("/unaffiliated", h.listUnaffiliatedCandidates)
		employees.POST("", h.addEmployee)
		employees.DELETE("/:email", h.removeEmployee)
	}
}

// registerEmployeeAffiliationRoutes registers the employee membership routes.
func registerEmployeeAffiliationRoutes(rg *gin.RouterGroup, affiliationService portssvc.AffiliationSvcFacade) {
	h := newAffiliationHandler(affiliationService)

	rg.GET("/companies", h.listMyCompanies)
	rg.GET("/team", h.listTeamMembers)
}

// AddEmployeeRequest carries the email of the account to affiliate.
type AddEmployeeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// listEmployees godoc
// @Summary List tenant employees
// @Description Retrieves the tenant's active employees with the number of assets each currently holds.
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/employees [get]
func (h *affiliationHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employees, err := h.affiliationService.ListEmployees(c.Request.Context(), hr.Email)
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list employees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// listUnaffiliatedCandidates godoc
// @Summary List unaffiliated employee accounts
// @Description Retrieves every employee account with no active affiliation, as candidates for direct affiliation.
// @Tags employees
// @Produce json
// @Success 200 {array} domain.UnaffiliatedEmployee
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/employees/unaffiliated [get]
func (h *affiliationHandler) listUnaffiliatedCandidates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	candidates, err := h.affiliationService.ListUnaffiliatedCandidates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list unaffiliated employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list candidates"})
		return
	}

	c.JSON(http.StatusOK, candidates)
}

// addEmployee godoc
// @Summary Affiliate an employee
// @Description Links an existing employee account to the tenant, consuming one employee slot.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body AddEmployeeRequest true "Employee email"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Account is not an employee"
// @Failure 404 {object} ErrorResponse "No such account"
// @Failure 409 {object} ErrorResponse "Already affiliated or employee limit reached"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/employees [post]
func (h *affiliationHandler) addEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	affiliation, err := h.affiliationService.AddEmployee(c.Request.Context(), hr, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to affiliate employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add employee"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"affiliationID": affiliation.AffiliationID,
		"employeeEmail": affiliation.EmployeeEmail,
		"companyName":   affiliation.CompanyName,
	})
}

// removeEmployee godoc
// @Summary Remove an employee
// @Description Ends the employee's affiliation with the tenant. Every asset they hold is returned and its availability restored.
// @Tags employees
// @Produce json
// @Param email path string true "Employee email"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "No active affiliation with this tenant"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/employees/{email} [delete]
func (h *affiliationHandler) removeEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employeeEmail := c.Param("email")
	if err := h.affiliationService.RemoveEmployee(c.Request.Context(), hr.Email, employeeEmail); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee is not affiliated with your company"})
			return
		}
		logger.Error("Failed to remove employee", slog.String("error", err.Error()), slog.String("employee_email", employeeEmail))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee removed"})
}

// listMyCompanies godoc
// @Summary List own companies
// @Description Retrieves the companies the employee belongs to, newest affiliation first.
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListCompaniesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/companies [get]
func (h *affiliationHandler) listMyCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employee, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	companies, err := h.affiliationService.ListMyCompanies(c.Request.Context(), employee.Email)
	if err != nil {
		logger.Error("Failed to list companies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list companies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// listTeamMembers godoc
// @Summary List colleagues
// @Description Retrieves the active employees of the company the employee belongs to. Unaffiliated employees get an empty list.
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListTeamResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/team [get]
func (h *affiliationHandler) listTeamMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employee, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	members, err := h.affiliationService.ListTeamMembers(c.Request.Context(), employee.Email)
	if err != nil {
		logger.Error("Failed to list team members", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list team"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTeamResponse(members))
}
