package booking

import (
	"context"

	"sagashealth/models"
	"sagashealth/services/catalog"
	"sagashealth/services/questionnaire"

	"go.uber.org/zap"
)

// QuestionnaireSession wraps the wizard with the booking context it was
// started for: the selected service and appointment slot. Held in the record
// store until completion or cancel.
type QuestionnaireSession struct {
	ServiceID       string               `json:"serviceId"`
	ServiceName     string               `json:"serviceName"`
	ServicePrice    float64              `json:"servicePrice"`
	AppointmentDate string               `json:"appointmentDate"`
	AppointmentTime string               `json:"appointmentTime"`
	Wizard          questionnaire.Wizard `json:"wizard"`
}

// FlowService threads the booking record through the questionnaire,
// checkout, confirmation, and certification stages. The record store is the
// only inter-stage channel.
type FlowService interface {
	StartQuestionnaire(ctx context.Context, sessionID, serviceID, date, timeSlot string) (*QuestionnaireSession, error)
	GetQuestionnaire(ctx context.Context, sessionID string) (*QuestionnaireSession, error)
	AnswerQuestionnaire(ctx context.Context, sessionID string, answer questionnaire.Answer) (*QuestionnaireSession, error)
	AdvanceQuestionnaire(ctx context.Context, sessionID string) (*QuestionnaireSession, error)
	RewindQuestionnaire(ctx context.Context, sessionID string) (*QuestionnaireSession, bool, error)
	CancelQuestionnaire(ctx context.Context, sessionID string) error
	CompleteQuestionnaire(ctx context.Context, sessionID string) (*models.BookingRecord, error)

	GetBooking(ctx context.Context, sessionID string) (*models.BookingRecord, error)
	RecordPayment(ctx context.Context, sessionID, paymentIntentID, method, hsaProvider string) (*models.BookingRecord, *models.PaymentRecord, error)
	Confirmation(ctx context.Context, sessionID string) (*models.BookingRecord, *models.PaymentRecord, string, error)
	Teardown(ctx context.Context, sessionID string) error
}

// DefaultFlowService implements FlowService.
type DefaultFlowService struct {
	Store   RecordStore
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}
