package handlers

import (
	"errors"
	"net/http"

	"sagashealth/middleware"
	"sagashealth/services/booking"
	"sagashealth/services/certification"
	"sagashealth/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CertificationHandler serves the LMN flow: the HSA administrator directory,
// letter generation for the session's booking, and the submission and
// download acknowledgements.
type CertificationHandler struct {
	Flow   booking.FlowService
	LMN    certification.LMNService
	Logger *zap.Logger
}

// NewCertificationHandler constructs a CertificationHandler.
func NewCertificationHandler(flow booking.FlowService, lmn certification.LMNService, logger *zap.Logger) *CertificationHandler {
	return &CertificationHandler{Flow: flow, LMN: lmn, Logger: logger}
}

// ListHSAProviders handles GET /api/certification/providers.
func (h *CertificationHandler) ListHSAProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": certification.Providers()})
}

// GenerateLMN handles POST /api/certification/lmn. The letter is built from
// the session's completed booking; a missing booking redirects to the
// catalog.
func (h *CertificationHandler) GenerateLMN(c *gin.Context) {
	var req struct {
		ProviderCode string `json:"providerCode" binding:"required"`
		PatientName  string `json:"patientName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}
	if req.PatientName == "" {
		req.PatientName = "Patient"
	}

	rec, err := h.Flow.GetBooking(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if errors.Is(err, booking.ErrNoBookingRecord) {
			utils.JSONRedirect(c, "/marketplace")
			return
		}
		h.Logger.Error("failed to load booking record", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking record", err.Error())
		return
	}

	doc, err := h.LMN.Generate(c.Request.Context(), req.ProviderCode, req.PatientName, rec)
	if err != nil {
		if errors.Is(err, certification.ErrUnknownProvider) {
			utils.JSONError(c, http.StatusBadRequest, "unknown HSA provider", err.Error())
			return
		}
		h.Logger.Error("LMN generation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate LMN", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"lmn": doc})
}

// SubmitLMN handles POST /api/certification/lmn/submit. No transmission
// happens; the response is the action text for the selected administrator.
func (h *CertificationHandler) SubmitLMN(c *gin.Context) {
	var req struct {
		ProviderCode string `json:"providerCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	instructions, err := h.LMN.SubmissionInstructions(req.ProviderCode)
	if err != nil {
		if errors.Is(err, certification.ErrUnknownProvider) {
			utils.JSONError(c, http.StatusBadRequest, "unknown HSA provider", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to prepare submission", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": instructions})
}

// DownloadLMN handles GET /api/certification/lmn/download. Letters are not
// persisted, so the download is an acknowledgement only.
func (h *CertificationHandler) DownloadLMN(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "LMN download would start in a real implementation",
	})
}
