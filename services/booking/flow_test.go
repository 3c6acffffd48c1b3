package booking

import (
	"context"
	"testing"

	"sagashealth/services/catalog"
	"sagashealth/services/questionnaire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFlow() *DefaultFlowService {
	return &DefaultFlowService{
		Store:   NewMemoryRecordStore(),
		Catalog: catalog.NewDefaultCatalogService(),
		Logger:  zap.NewNop(),
	}
}

// completeWizard drives the questionnaire for service 4 (Therapeutic
// Massage) to the final step.
func completeWizard(t *testing.T, flow *DefaultFlowService, sessionID string) {
	t.Helper()
	ctx := context.Background()

	_, err := flow.StartQuestionnaire(ctx, sessionID, "4", "2026-09-14", "10:00 AM")
	require.NoError(t, err)

	steps := []questionnaire.Answer{
		questionnaire.AgeAnswer{Age: "34"},
		questionnaire.HSAProviderAnswer{Provider: "HealthEquity"},
		questionnaire.StateAnswer{State: "New York"},
		nil, // informational step
		questionnaire.DiagnosedToggle{Condition: "Back Pain"},
		nil, // optional risk factors
		questionnaire.PreventingToggle{Condition: "Back Pain"},
		questionnaire.AttestationAnswer{Accepted: true},
	}
	for i, answer := range steps {
		if answer != nil {
			_, err := flow.AnswerQuestionnaire(ctx, sessionID, answer)
			require.NoError(t, err, "step %d", i+1)
		}
		if i < len(steps)-1 {
			_, err := flow.AdvanceQuestionnaire(ctx, sessionID)
			require.NoError(t, err, "advance from step %d", i+1)
		}
	}
}

func TestStartQuestionnaireRequiresAppointment(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()

	_, err := flow.StartQuestionnaire(ctx, "sess-1", "4", "", "10:00 AM")
	require.ErrorIs(t, err, ErrMissingAppointment)

	_, err = flow.StartQuestionnaire(ctx, "sess-1", "4", "2026-09-14", "")
	require.ErrorIs(t, err, ErrMissingAppointment)
}

func TestStartQuestionnaireUnknownService(t *testing.T) {
	flow := newTestFlow()
	_, err := flow.StartQuestionnaire(context.Background(), "sess-1", "no-such-id", "2026-09-14", "10:00 AM")
	require.ErrorIs(t, err, catalog.ErrServiceNotFound)
}

func TestQuestionnaireOperationsWithoutSession(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()

	_, err := flow.GetQuestionnaire(ctx, "sess-1")
	require.ErrorIs(t, err, ErrNoQuestionnaire)

	_, err = flow.AdvanceQuestionnaire(ctx, "sess-1")
	require.ErrorIs(t, err, ErrNoQuestionnaire)

	_, err = flow.CompleteQuestionnaire(ctx, "sess-1")
	require.ErrorIs(t, err, ErrNoQuestionnaire)
}

func TestCompleteQuestionnaireWritesBookingRecord(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()
	completeWizard(t, flow, "sess-1")

	rec, err := flow.CompleteQuestionnaire(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "Therapeutic Massage", rec.ServiceName)
	assert.Equal(t, float64(175), rec.ServicePrice)
	assert.Equal(t, "2026-09-14", rec.AppointmentDate)
	assert.Equal(t, []string{"Back Pain"}, rec.Questionnaire.DiagnosedConditions)
	assert.True(t, rec.Questionnaire.Attestation)
	assert.Empty(t, rec.PaymentIntentID)

	// The wizard slot is consumed.
	_, err = flow.GetQuestionnaire(ctx, "sess-1")
	require.ErrorIs(t, err, ErrNoQuestionnaire)

	// The booking record is readable for checkout.
	got, err := flow.GetBooking(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestCompleteQuestionnaireClearsStalePayment(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()

	// First booking, fully paid.
	completeWizard(t, flow, "sess-1")
	_, err := flow.CompleteQuestionnaire(ctx, "sess-1")
	require.NoError(t, err)
	_, _, err = flow.RecordPayment(ctx, "sess-1", "pi_first", "card", "")
	require.NoError(t, err)

	// A second booking replaces the first and its payment.
	completeWizard(t, flow, "sess-1")
	rec, err := flow.CompleteQuestionnaire(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, rec.PaymentIntentID)

	_, err = flow.Store.GetPayment(ctx, "sess-1")
	require.ErrorIs(t, err, ErrNoRecord)
}

func TestRewindFromFirstStepCancels(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()

	_, err := flow.StartQuestionnaire(ctx, "sess-1", "4", "2026-09-14", "10:00 AM")
	require.NoError(t, err)

	qs, cancelled, err := flow.RewindQuestionnaire(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, cancelled)
	assert.Nil(t, qs)

	_, err = flow.GetQuestionnaire(ctx, "sess-1")
	require.ErrorIs(t, err, ErrNoQuestionnaire)
}

func TestRewindKeepsLaterAnswers(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()
	completeWizard(t, flow, "sess-1")

	qs, cancelled, err := flow.RewindQuestionnaire(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.Equal(t, questionnaire.StepConditionsPreventing, qs.Wizard.Step)
	assert.True(t, qs.Wizard.Response.Attestation)
}

func TestRecordPaymentIsAdditiveAndOneTime(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()
	completeWizard(t, flow, "sess-1")
	_, err := flow.CompleteQuestionnaire(ctx, "sess-1")
	require.NoError(t, err)

	rec, pay, err := flow.RecordPayment(ctx, "sess-1", "pi_123", "card", "")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", rec.PaymentIntentID)
	assert.Equal(t, "card", rec.PaymentMethod)
	assert.Equal(t, "pi_123", pay.PaymentIntentID)

	// The questionnaire data is untouched by the augmentation.
	assert.Equal(t, []string{"Back Pain"}, rec.Questionnaire.DiagnosedConditions)

	_, _, err = flow.RecordPayment(ctx, "sess-1", "pi_456", "card", "")
	require.ErrorIs(t, err, ErrPaymentAlreadyRecorded)

	got, err := flow.GetBooking(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", got.PaymentIntentID)
}

func TestRecordPaymentWithoutBooking(t *testing.T) {
	flow := newTestFlow()
	_, _, err := flow.RecordPayment(context.Background(), "sess-1", "pi_123", "card", "")
	require.ErrorIs(t, err, ErrNoBookingRecord)
}

func TestConfirmationFormatAndFreshness(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()
	completeWizard(t, flow, "sess-1")
	_, err := flow.CompleteQuestionnaire(ctx, "sess-1")
	require.NoError(t, err)
	_, _, err = flow.RecordPayment(ctx, "sess-1", "pi_123", "card", "")
	require.NoError(t, err)

	rec, pay, code, err := flow.Confirmation(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, pay)
	assert.Equal(t, "pi_123", rec.PaymentIntentID)
	assert.Regexp(t, `^SH[A-Z0-9]{9}$`, code)

	// Reloading the page yields a new number.
	_, _, second, err := flow.Confirmation(ctx, "sess-1")
	require.NoError(t, err)
	assert.NotEqual(t, code, second)
}

func TestTeardownClearsSession(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()
	completeWizard(t, flow, "sess-1")
	_, err := flow.CompleteQuestionnaire(ctx, "sess-1")
	require.NoError(t, err)
	_, _, err = flow.RecordPayment(ctx, "sess-1", "pi_123", "card", "")
	require.NoError(t, err)

	require.NoError(t, flow.Teardown(ctx, "sess-1"))

	_, err = flow.GetBooking(ctx, "sess-1")
	require.ErrorIs(t, err, ErrNoBookingRecord)
	_, err = flow.Store.GetPayment(ctx, "sess-1")
	require.ErrorIs(t, err, ErrNoRecord)
}

func TestSessionsAreIsolated(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()
	completeWizard(t, flow, "sess-1")
	_, err := flow.CompleteQuestionnaire(ctx, "sess-1")
	require.NoError(t, err)

	_, err = flow.GetBooking(ctx, "sess-2")
	require.ErrorIs(t, err, ErrNoBookingRecord)
}
