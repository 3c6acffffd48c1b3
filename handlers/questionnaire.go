package handlers

import (
	"errors"
	"net/http"

	"sagashealth/middleware"
	"sagashealth/services/booking"
	"sagashealth/services/catalog"
	"sagashealth/services/questionnaire"
	"sagashealth/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuestionnaireHandler drives the eight-step eligibility wizard. All state
// lives in the session's questionnaire record; the handler only translates
// HTTP to wizard operations.
type QuestionnaireHandler struct {
	Flow   booking.FlowService
	Logger *zap.Logger
}

// NewQuestionnaireHandler constructs a QuestionnaireHandler.
func NewQuestionnaireHandler(flow booking.FlowService, logger *zap.Logger) *QuestionnaireHandler {
	return &QuestionnaireHandler{Flow: flow, Logger: logger}
}

// questionnaireView is the wire shape of the wizard state, carrying the
// choices the current step renders.
type questionnaireView struct {
	ServiceID       string                       `json:"serviceId"`
	ServiceName     string                       `json:"serviceName"`
	ServicePrice    float64                      `json:"servicePrice"`
	AppointmentDate string                       `json:"appointmentDate"`
	AppointmentTime string                       `json:"appointmentTime"`
	Step            int                          `json:"step"`
	TotalSteps      int                          `json:"totalSteps"`
	Title           string                       `json:"title"`
	CanProceed      bool                         `json:"canProceed"`
	Response        questionnaireResponseView    `json:"response"`
	HSAProviders    []string                     `json:"hsaProviders,omitempty"`
	States          []string                     `json:"states,omitempty"`
	Conditions      []string                     `json:"conditions,omitempty"`
	Prompt          string                       `json:"prompt,omitempty"`
	AttestationText string                       `json:"attestationText,omitempty"`
}

type questionnaireResponseView struct {
	Age                       string   `json:"age"`
	HSAProvider               string   `json:"hsaProvider"`
	StateOfResidence          string   `json:"stateOfResidence"`
	DiagnosedConditions       []string `json:"diagnosedConditions"`
	OtherDiagnosedConditions  string   `json:"otherDiagnosedConditions"`
	RiskFactors               string   `json:"riskFactors"`
	ConditionsPreventing      []string `json:"conditionsPreventing"`
	OtherConditionsPreventing string   `json:"otherConditionsPreventing"`
	Attestation               bool     `json:"attestation"`
}

func newQuestionnaireView(qs *booking.QuestionnaireSession) questionnaireView {
	w := qs.Wizard
	view := questionnaireView{
		ServiceID:       qs.ServiceID,
		ServiceName:     qs.ServiceName,
		ServicePrice:    qs.ServicePrice,
		AppointmentDate: qs.AppointmentDate,
		AppointmentTime: qs.AppointmentTime,
		Step:            int(w.Step),
		TotalSteps:      int(questionnaire.LastStep),
		Title:           w.Step.Title(),
		CanProceed:      questionnaire.CanAdvance(w.Step, w.Response),
		Response: questionnaireResponseView{
			Age:                       w.Response.Age,
			HSAProvider:               w.Response.HSAProvider,
			StateOfResidence:          w.Response.StateOfResidence,
			DiagnosedConditions:       w.Response.DiagnosedConditions,
			OtherDiagnosedConditions:  w.Response.OtherDiagnosedConditions,
			RiskFactors:               w.Response.RiskFactors,
			ConditionsPreventing:      w.Response.ConditionsPreventing,
			OtherConditionsPreventing: w.Response.OtherConditionsPreventing,
			Attestation:               w.Response.Attestation,
		},
	}

	switch w.Step {
	case questionnaire.StepHSAProvider:
		view.HSAProviders = questionnaire.HSAProviderNames
	case questionnaire.StepStateOfResidence:
		view.States = questionnaire.States
	case questionnaire.StepDiagnosedConditions, questionnaire.StepConditionsPreventing:
		view.Conditions = w.Conditions()
	case questionnaire.StepRiskFactors:
		view.Prompt = w.Prompt()
	case questionnaire.StepAttestation:
		view.AttestationText = questionnaire.AttestationText
	}
	return view
}

// StartQuestionnaire handles POST /api/booking/questionnaire.
func (h *QuestionnaireHandler) StartQuestionnaire(c *gin.Context) {
	var req struct {
		ServiceID       string `json:"serviceId" binding:"required"`
		AppointmentDate string `json:"appointmentDate"`
		AppointmentTime string `json:"appointmentTime"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	qs, err := h.Flow.StartQuestionnaire(c.Request.Context(), middleware.SessionID(c), req.ServiceID, req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingAppointment):
			utils.JSONError(c, http.StatusBadRequest, "appointment date and time are required", err.Error())
		case errors.Is(err, catalog.ErrServiceNotFound):
			utils.JSONRedirect(c, "/marketplace")
		default:
			h.Logger.Error("failed to start questionnaire", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to start questionnaire", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, newQuestionnaireView(qs))
}

// GetQuestionnaire handles GET /api/booking/questionnaire.
func (h *QuestionnaireHandler) GetQuestionnaire(c *gin.Context) {
	qs, err := h.Flow.GetQuestionnaire(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.questionnaireError(c, err)
		return
	}
	c.JSON(http.StatusOK, newQuestionnaireView(qs))
}

// AnswerQuestionnaire handles PUT /api/booking/questionnaire/answer. The
// request carries exactly one answer field; which fields are accepted
// depends on the wizard's current step.
func (h *QuestionnaireHandler) AnswerQuestionnaire(c *gin.Context) {
	var req struct {
		Age              *string `json:"age"`
		HSAProvider      *string `json:"hsaProvider"`
		StateOfResidence *string `json:"stateOfResidence"`
		ToggleCondition  *string `json:"toggleCondition"`
		OtherConditions  *string `json:"otherConditions"`
		RiskFactors      *string `json:"riskFactors"`
		Attestation      *bool   `json:"attestation"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	sessionID := middleware.SessionID(c)
	qs, err := h.Flow.GetQuestionnaire(c.Request.Context(), sessionID)
	if err != nil {
		h.questionnaireError(c, err)
		return
	}

	var answer questionnaire.Answer
	switch {
	case req.Age != nil:
		answer = questionnaire.AgeAnswer{Age: *req.Age}
	case req.HSAProvider != nil:
		answer = questionnaire.HSAProviderAnswer{Provider: *req.HSAProvider}
	case req.StateOfResidence != nil:
		answer = questionnaire.StateAnswer{State: *req.StateOfResidence}
	case req.RiskFactors != nil:
		answer = questionnaire.RiskFactorsAnswer{Text: *req.RiskFactors}
	case req.Attestation != nil:
		answer = questionnaire.AttestationAnswer{Accepted: *req.Attestation}
	case req.ToggleCondition != nil:
		// The toggle and free-text fields are shared by steps 5 and 7;
		// the wizard's position decides which list they address.
		if qs.Wizard.Step == questionnaire.StepConditionsPreventing {
			answer = questionnaire.PreventingToggle{Condition: *req.ToggleCondition}
		} else {
			answer = questionnaire.DiagnosedToggle{Condition: *req.ToggleCondition}
		}
	case req.OtherConditions != nil:
		if qs.Wizard.Step == questionnaire.StepConditionsPreventing {
			answer = questionnaire.OtherPreventingAnswer{Text: *req.OtherConditions}
		} else {
			answer = questionnaire.OtherDiagnosedAnswer{Text: *req.OtherConditions}
		}
	default:
		utils.JSONError(c, http.StatusBadRequest, "no answer field provided", "expected one of: age, hsaProvider, stateOfResidence, toggleCondition, otherConditions, riskFactors, attestation")
		return
	}

	qs, err = h.Flow.AnswerQuestionnaire(c.Request.Context(), sessionID, answer)
	if err != nil {
		h.questionnaireError(c, err)
		return
	}
	c.JSON(http.StatusOK, newQuestionnaireView(qs))
}

// AdvanceQuestionnaire handles POST /api/booking/questionnaire/next.
func (h *QuestionnaireHandler) AdvanceQuestionnaire(c *gin.Context) {
	qs, err := h.Flow.AdvanceQuestionnaire(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.questionnaireError(c, err)
		return
	}
	c.JSON(http.StatusOK, newQuestionnaireView(qs))
}

// RewindQuestionnaire handles POST /api/booking/questionnaire/back. Going
// back from the first step cancels the flow and redirects to the service
// detail page.
func (h *QuestionnaireHandler) RewindQuestionnaire(c *gin.Context) {
	qs, cancelled, err := h.Flow.RewindQuestionnaire(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.questionnaireError(c, err)
		return
	}
	if cancelled {
		c.JSON(http.StatusOK, gin.H{"cancelled": true, "redirect": "/marketplace"})
		return
	}
	c.JSON(http.StatusOK, newQuestionnaireView(qs))
}

// CancelQuestionnaire handles DELETE /api/booking/questionnaire. The exit
// routing is the same regardless of the step the wizard was on.
func (h *QuestionnaireHandler) CancelQuestionnaire(c *gin.Context) {
	if err := h.Flow.CancelQuestionnaire(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.Logger.Error("failed to cancel questionnaire", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel questionnaire", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true, "redirect": "/marketplace"})
}

// CompleteQuestionnaire handles POST /api/booking/questionnaire/complete.
// On success the booking record is written and the client proceeds to
// checkout.
func (h *QuestionnaireHandler) CompleteQuestionnaire(c *gin.Context) {
	rec, err := h.Flow.CompleteQuestionnaire(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.questionnaireError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": rec, "redirect": "/booking"})
}

// questionnaireError maps wizard errors onto HTTP statuses. A missing
// questionnaire record redirects to the catalog like every other missing
// stage record.
func (h *QuestionnaireHandler) questionnaireError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNoQuestionnaire):
		utils.JSONRedirect(c, "/marketplace")
	case errors.Is(err, questionnaire.ErrWrongStep),
		errors.Is(err, questionnaire.ErrStepIncomplete),
		errors.Is(err, questionnaire.ErrNotFinalStep),
		errors.Is(err, questionnaire.ErrUnknownCondition),
		errors.Is(err, questionnaire.ErrInvalidChoice):
		utils.JSONError(c, http.StatusUnprocessableEntity, "questionnaire step rejected the input", err.Error())
	default:
		h.Logger.Error("questionnaire operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "questionnaire operation failed", err.Error())
	}
}
