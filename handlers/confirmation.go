package handlers

import (
	"errors"
	"net/http"

	"sagashealth/middleware"
	"sagashealth/services/booking"
	"sagashealth/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConfirmationHandler serves the post-payment confirmation view and the
// final teardown back to the catalog.
type ConfirmationHandler struct {
	Flow   booking.FlowService
	Logger *zap.Logger
}

// NewConfirmationHandler constructs a ConfirmationHandler.
func NewConfirmationHandler(flow booking.FlowService, logger *zap.Logger) *ConfirmationHandler {
	return &ConfirmationHandler{Flow: flow, Logger: logger}
}

// GetConfirmation handles GET /api/confirmation. The confirmation number is
// generated per view, not stored; reloading yields a fresh one.
func (h *ConfirmationHandler) GetConfirmation(c *gin.Context) {
	rec, pay, code, err := h.Flow.Confirmation(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if errors.Is(err, booking.ErrNoBookingRecord) {
			utils.JSONRedirect(c, "/marketplace")
			return
		}
		h.Logger.Error("failed to load confirmation", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load confirmation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"confirmationNumber": code,
		"booking":            rec,
		"payment":            pay,
	})
}

// TeardownBooking handles DELETE /api/confirmation: clears the session's
// booking and payment records before the client returns to the catalog.
func (h *ConfirmationHandler) TeardownBooking(c *gin.Context) {
	if err := h.Flow.Teardown(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.Logger.Error("failed to tear down booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to tear down booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/marketplace"})
}
