package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sagashealth/models"
	"sagashealth/services/questionnaire"
	"sagashealth/utils"

	"go.uber.org/zap"
)

// StartQuestionnaire opens a wizard for the selected service and appointment
// slot. Any previous in-progress questionnaire for the session is replaced.
func (s *DefaultFlowService) StartQuestionnaire(ctx context.Context, sessionID, serviceID, date, timeSlot string) (*QuestionnaireSession, error) {
	if date == "" || timeSlot == "" {
		return nil, ErrMissingAppointment
	}

	svc, err := s.Catalog.Get(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to start questionnaire: %w", err)
	}

	qs := &QuestionnaireSession{
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		ServicePrice:    svc.Price,
		AppointmentDate: date,
		AppointmentTime: timeSlot,
		Wizard:          *questionnaire.NewWizard(svc.Name),
	}
	if err := s.Store.SetQuestionnaire(ctx, sessionID, qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// GetQuestionnaire returns the in-progress wizard state.
func (s *DefaultFlowService) GetQuestionnaire(ctx context.Context, sessionID string) (*QuestionnaireSession, error) {
	qs, err := s.Store.GetQuestionnaire(ctx, sessionID)
	if errors.Is(err, ErrNoRecord) {
		return nil, ErrNoQuestionnaire
	}
	return qs, err
}

// AnswerQuestionnaire applies one answer to the current step and saves the
// wizard. Answers for a different step are rejected without a state change.
func (s *DefaultFlowService) AnswerQuestionnaire(ctx context.Context, sessionID string, answer questionnaire.Answer) (*QuestionnaireSession, error) {
	qs, err := s.GetQuestionnaire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := qs.Wizard.Apply(answer); err != nil {
		return nil, err
	}
	if err := s.Store.SetQuestionnaire(ctx, sessionID, qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// AdvanceQuestionnaire moves the wizard forward if the current step's gate
// is satisfied; otherwise the wizard stays on the step.
func (s *DefaultFlowService) AdvanceQuestionnaire(ctx context.Context, sessionID string) (*QuestionnaireSession, error) {
	qs, err := s.GetQuestionnaire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := qs.Wizard.Next(); err != nil {
		return nil, err
	}
	if err := s.Store.SetQuestionnaire(ctx, sessionID, qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// RewindQuestionnaire moves the wizard one step back, keeping later steps'
// data. Going back from step 1 cancels the whole flow; the second return
// reports that case.
func (s *DefaultFlowService) RewindQuestionnaire(ctx context.Context, sessionID string) (*QuestionnaireSession, bool, error) {
	qs, err := s.GetQuestionnaire(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	if !qs.Wizard.Back() {
		if err := s.CancelQuestionnaire(ctx, sessionID); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	if err := s.Store.SetQuestionnaire(ctx, sessionID, qs); err != nil {
		return nil, false, err
	}
	return qs, false, nil
}

// CancelQuestionnaire discards the wizard with no other side effect. The
// routing is identical at every step.
func (s *DefaultFlowService) CancelQuestionnaire(ctx context.Context, sessionID string) error {
	return s.Store.ClearQuestionnaire(ctx, sessionID)
}

// CompleteQuestionnaire finalizes the wizard at the attestation step and
// writes the booking record. The booking slot is overwritten, never
// appended: one in-flight booking per session. A stale payment slot from an
// earlier booking is cleared with it.
func (s *DefaultFlowService) CompleteQuestionnaire(ctx context.Context, sessionID string) (*models.BookingRecord, error) {
	qs, err := s.GetQuestionnaire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resp, err := qs.Wizard.Complete()
	if err != nil {
		return nil, err
	}

	rec := &models.BookingRecord{
		ServiceID:       qs.ServiceID,
		ServiceName:     qs.ServiceName,
		ServicePrice:    qs.ServicePrice,
		AppointmentDate: qs.AppointmentDate,
		AppointmentTime: qs.AppointmentTime,
		Questionnaire:   resp,
	}
	if err := s.Store.SetBooking(ctx, sessionID, rec); err != nil {
		return nil, err
	}
	if err := s.Store.ClearPayment(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to clear stale payment record", zap.Error(err))
	}
	if err := s.Store.ClearQuestionnaire(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to clear completed questionnaire", zap.Error(err))
	}
	return rec, nil
}

// GetBooking reads the session's booking record. Absence is the guard-clause
// error handlers translate into a catalog redirect.
func (s *DefaultFlowService) GetBooking(ctx context.Context, sessionID string) (*models.BookingRecord, error) {
	rec, err := s.Store.GetBooking(ctx, sessionID)
	if errors.Is(err, ErrNoRecord) {
		return nil, ErrNoBookingRecord
	}
	return rec, err
}

// RecordPayment appends the payment fields to the booking record — an
// additive, one-time transition — and stores the payment record alongside.
func (s *DefaultFlowService) RecordPayment(ctx context.Context, sessionID, paymentIntentID, method, hsaProvider string) (*models.BookingRecord, *models.PaymentRecord, error) {
	rec, err := s.GetBooking(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if rec.PaymentIntentID != "" {
		return nil, nil, ErrPaymentAlreadyRecorded
	}

	rec.PaymentIntentID = paymentIntentID
	rec.PaymentMethod = method
	rec.HSAProvider = hsaProvider
	if err := s.Store.SetBooking(ctx, sessionID, rec); err != nil {
		return nil, nil, err
	}

	payment := &models.PaymentRecord{
		PaymentIntentID: paymentIntentID,
		PaymentMethod:   method,
		Timestamp:       time.Now().UTC(),
	}
	if err := s.Store.SetPayment(ctx, sessionID, payment); err != nil {
		return nil, nil, err
	}
	return rec, payment, nil
}

// Confirmation reads the (possibly augmented) booking record and generates a
// confirmation number. Read-only: the record is not touched.
func (s *DefaultFlowService) Confirmation(ctx context.Context, sessionID string) (*models.BookingRecord, *models.PaymentRecord, string, error) {
	rec, err := s.GetBooking(ctx, sessionID)
	if err != nil {
		return nil, nil, "", err
	}
	payment, err := s.Store.GetPayment(ctx, sessionID)
	if err != nil && !errors.Is(err, ErrNoRecord) {
		return nil, nil, "", err
	}
	code := "SH" + utils.RandomRef(9)
	return rec, payment, code, nil
}

// Teardown clears the booking and payment slots before the caller returns
// to the catalog.
func (s *DefaultFlowService) Teardown(ctx context.Context, sessionID string) error {
	if err := s.Store.ClearBooking(ctx, sessionID); err != nil {
		return err
	}
	return s.Store.ClearPayment(ctx, sessionID)
}
