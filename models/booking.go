package models

import "time"

// BookingRecord is the session-persisted record describing a user's
// in-progress or completed reservation. Created once at questionnaire
// completion; checkout appends the payment fields exactly once.
type BookingRecord struct {
	ServiceID       string                `json:"serviceId"`
	ServiceName     string                `json:"serviceName"`
	ServicePrice    float64               `json:"servicePrice"`
	AppointmentDate string                `json:"appointmentDate"`
	AppointmentTime string                `json:"appointmentTime"`
	Questionnaire   QuestionnaireResponse `json:"healthQuestionnaireData"`

	// Appended by checkout.
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
	HSAProvider     string `json:"hsaProvider,omitempty"`
}

// PaymentRecord is stored alongside the booking record after a successful
// payment.
type PaymentRecord struct {
	PaymentIntentID string    `json:"paymentIntentId"`
	PaymentMethod   string    `json:"paymentMethod"`
	Timestamp       time.Time `json:"timestamp"`
}
