package certification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sagashealth/models"
	"sagashealth/utils"

	"go.uber.org/zap"
)

// LMNService generates Letters of Medical Necessity and describes how to
// submit them to the selected HSA administrator.
type LMNService interface {
	Generate(ctx context.Context, providerCode, patientName string, booking *models.BookingRecord) (*models.LMNDocument, error)
	SubmissionInstructions(providerCode string) (string, error)
}

// DefaultLMNService implements LMNService. Delay simulates the clinical
// review turnaround of a real generation backend.
type DefaultLMNService struct {
	Delay  time.Duration
	Logger *zap.Logger
}

// Generate synthesizes the letter after the configured delay. The clinical
// rationale is a fixed sentence pattern over the diagnosed conditions. The
// document is returned only; nothing is persisted.
func (s *DefaultLMNService) Generate(ctx context.Context, providerCode, patientName string, booking *models.BookingRecord) (*models.LMNDocument, error) {
	provider, err := ProviderByCode(providerCode)
	if err != nil {
		return nil, err
	}

	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	conditions := booking.Questionnaire.DiagnosedConditions
	doc := &models.LMNDocument{
		LMNID:       "LMN-" + utils.RandomRef(9),
		Provider:    provider.Code,
		PatientName: patientName,
		ServiceName: booking.ServiceName,
		Conditions:  conditions,
		ClinicalRationale: fmt.Sprintf(
			"Based on the patient's reported health conditions (%s), this service is medically necessary to address their specific health concerns and improve their quality of life.",
			strings.Join(conditions, ", ")),
		GeneratedAt: time.Now().UTC(),
		Status:      "generated",
	}

	s.Logger.Info("LMN generated",
		zap.String("lmnId", doc.LMNID),
		zap.String("provider", provider.Code),
		zap.String("service", booking.ServiceName))
	return doc, nil
}

// SubmissionInstructions returns the post-generation action text: a digital
// submission confirmation for providers that accept it, manual instructions
// otherwise.
func (s *DefaultLMNService) SubmissionInstructions(providerCode string) (string, error) {
	provider, err := ProviderByCode(providerCode)
	if err != nil {
		return "", err
	}
	if provider.DigitalSubmission {
		return fmt.Sprintf("LMN submitted to %s via digital submission. You will receive confirmation via email.", provider.Name), nil
	}
	return fmt.Sprintf("Please submit the LMN to %s via %s or call %s",
		provider.Name, provider.ContactInfo.Website, provider.ContactInfo.Phone), nil
}
