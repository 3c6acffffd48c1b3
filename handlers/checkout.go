package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"sagashealth/middleware"
	"sagashealth/models"
	"sagashealth/services/booking"
	"sagashealth/services/payment"
	"sagashealth/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler serves the checkout stage: the order summary, payment
// intent creation, and the card and HSA completion paths. Every endpoint is
// guarded on the session's booking record.
type CheckoutHandler struct {
	Flow    booking.FlowService
	Payment payment.PaymentService
	Logger  *zap.Logger
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(flow booking.FlowService, paymentSvc payment.PaymentService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Flow: flow, Payment: paymentSvc, Logger: logger}
}

// bookingAmount converts the booking price to minor currency units, the
// denomination the processor deals in.
func bookingAmount(rec *models.BookingRecord) int64 {
	return int64(math.Round(rec.ServicePrice * 100))
}

// requireBooking loads the session's booking record, emitting the catalog
// redirect when it is missing. The caller must stop when ok is false.
func (h *CheckoutHandler) requireBooking(c *gin.Context) (*models.BookingRecord, bool) {
	rec, err := h.Flow.GetBooking(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if errors.Is(err, booking.ErrNoBookingRecord) {
			utils.JSONRedirect(c, "/marketplace")
			return nil, false
		}
		h.Logger.Error("failed to load booking record", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking record", err.Error())
		return nil, false
	}
	return rec, true
}

// GetCheckout handles GET /api/checkout: the order summary for the pending
// booking.
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	rec, ok := h.requireBooking(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": rec})
}

// CreatePaymentIntent handles POST /api/checkout/payment-intent. The amount
// arrives from the client in minor currency units and must match the
// session's booking total.
func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}
	rec, ok := h.requireBooking(c)
	if !ok {
		return
	}
	if expected := bookingAmount(rec); req.Amount != expected {
		utils.JSONError(c, http.StatusBadRequest, "payment amount does not match the booking total",
			fmt.Sprintf("expected %d, got %d", expected, req.Amount))
		return
	}

	secret, err := h.Payment.CreateIntent(c.Request.Context(), req.Amount, req.Currency)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			utils.JSONError(c, http.StatusBadRequest, "invalid payment amount", err.Error())
			return
		}
		h.Logger.Error("failed to create payment intent", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// ConfirmCardPayment handles POST /api/checkout/card. On success the payment
// fields are appended to the booking record and the client moves on to the
// confirmation page.
func (h *CheckoutHandler) ConfirmCardPayment(c *gin.Context) {
	var req struct {
		PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}
	rec, ok := h.requireBooking(c)
	if !ok {
		return
	}

	intentID, err := h.Payment.ConfirmCardPayment(c.Request.Context(), req.PaymentIntentID, bookingAmount(rec))
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrAmountMismatch):
			utils.JSONError(c, http.StatusBadRequest, "payment amount does not match the booking total", err.Error())
		case errors.Is(err, payment.ErrAuthenticationFailed):
			utils.JSONError(c, http.StatusPaymentRequired, "Payment authentication failed. Please try again.", err.Error())
		case errors.Is(err, payment.ErrPaymentNotSuccessful):
			utils.JSONError(c, http.StatusPaymentRequired, "Payment was not successful. Please try again.", err.Error())
		default:
			h.Logger.Error("card payment confirmation failed", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "failed to confirm payment", err.Error())
		}
		return
	}

	rec, pay, err := h.Flow.RecordPayment(c.Request.Context(), middleware.SessionID(c), intentID, "card", "")
	if err != nil {
		h.recordPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":  rec,
		"payment":  pay,
		"redirect": "/booking-confirmation",
	})
}

// CompleteHSAPayment handles POST /api/checkout/hsa: the simulated HSA/FSA
// path. The provider selection is the whole transaction.
func (h *CheckoutHandler) CompleteHSAPayment(c *gin.Context) {
	var req struct {
		HSAProvider string `json:"hsaProvider"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}
	if _, ok := h.requireBooking(c); !ok {
		return
	}

	intentID, err := h.Payment.ProcessHSAPayment(req.HSAProvider)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "HSA payment rejected", err.Error())
		return
	}

	rec, pay, err := h.Flow.RecordPayment(c.Request.Context(), middleware.SessionID(c), intentID, "hsa", req.HSAProvider)
	if err != nil {
		h.recordPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":  rec,
		"payment":  pay,
		"redirect": "/booking-confirmation",
	})
}

func (h *CheckoutHandler) recordPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNoBookingRecord):
		utils.JSONRedirect(c, "/marketplace")
	case errors.Is(err, booking.ErrPaymentAlreadyRecorded):
		utils.JSONError(c, http.StatusConflict, "payment already recorded for this booking", err.Error())
	default:
		h.Logger.Error("failed to record payment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to record payment", err.Error())
	}
}
