package payment

import (
	"errors"
	"fmt"
	"slices"

	"sagashealth/services/questionnaire"
)

// HSASimulatedIntentID marks a booking paid through the simulated HSA path.
// No processor is involved: provider selection is the whole transaction.
const HSASimulatedIntentID = "HSA_PAYMENT_SIMULATED"

// ErrMissingHSAProvider is returned when the HSA path runs without a
// provider selection.
var ErrMissingHSAProvider = errors.New("HSA/FSA provider must be selected")

// ProcessHSAPayment validates the provider selection and reports the
// simulated success id. Eligibility adjudication is deferred to the licensed
// provider's LMN review; nothing is charged here.
func (s *DefaultPaymentService) ProcessHSAPayment(provider string) (string, error) {
	if provider == "" {
		return "", ErrMissingHSAProvider
	}
	if !slices.Contains(questionnaire.HSAProviderNames, provider) {
		return "", fmt.Errorf("unknown HSA provider: %q", provider)
	}
	return HSASimulatedIntentID, nil
}
