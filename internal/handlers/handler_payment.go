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

// paymentHandler handles HTTP requests for package purchases.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers the HR subscription routes.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	rg.GET("/packages", h.listPackages)
	payments := rg.Group("/payments")
	{
		payments.GET("", h.listPaymentHistory)
		payments.POST("/intent", h.createPaymentIntent)
		payments.POST("/confirm", h.confirmPayment)
	}
}

// listPackages godoc
// @Summary List purchasable packages
// @Description Retrieves the package catalog, cheapest first.
// @Tags payments
// @Produce json
// @Success 200 {object} dto.ListPackagesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/packages [get]
func (h *paymentHandler) listPackages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	packages, err := h.paymentService.ListPackages(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list packages", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list packages"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPackagesResponse(packages))
}

// listPaymentHistory godoc
// @Summary List payment history
// @Description Retrieves the tenant's completed payments, newest first.
// @Tags payments
// @Produce json
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/payments [get]
func (h *paymentHandler) listPaymentHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payments, err := h.paymentService.ListPaymentHistory(c.Request.Context(), hr.Email)
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// createPaymentIntent godoc
// @Summary Start a package purchase
// @Description Creates a payment intent for the chosen package and returns the client secret for the card step.
// @Tags payments
// @Accept json
// @Produce json
// @Param intent body dto.CreateIntentRequest true "Package to purchase"
// @Success 201 {object} dto.CreateIntentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Package not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/payments/intent [post]
func (h *paymentHandler) createPaymentIntent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	intent, err := h.paymentService.CreatePaymentIntent(c.Request.Context(), hr, req.PackageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Package not found"})
			return
		}
		logger.Error("Failed to create payment intent", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start payment"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateIntentResponse{
		ClientSecret: intent.ClientSecret,
		IntentID:     intent.IntentID,
		Amount:       intent.Amount,
	})
}

// confirmPayment godoc
// @Summary Confirm a package purchase
// @Description Verifies the payment succeeded at the gateway, records it and raises the tenant's employee limit. Replays of the same payment are rejected.
// @Tags payments
// @Accept json
// @Produce json
// @Param confirmation body dto.ConfirmPaymentRequest true "Intent to confirm"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown intent"
// @Failure 409 {object} ErrorResponse "Payment not completed or already recorded"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hr/payments/confirm [post]
func (h *paymentHandler) confirmPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hr, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	payment, err := h.paymentService.ConfirmPayment(c.Request.Context(), hr, req.IntentID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment intent not found"})
		case errors.Is(err, apperrors.ErrUnavailable), errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to confirm payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to confirm payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
