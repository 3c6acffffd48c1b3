package questionnaire

import (
	"fmt"
	"slices"

	"sagashealth/models"
)

// Wizard is the questionnaire state machine for one booking attempt: the
// current step and the partially filled response. Backward navigation keeps
// later steps' data; cancel discards the whole value.
type Wizard struct {
	ServiceName string                       `json:"serviceName"`
	Step        Step                         `json:"step"`
	Response    models.QuestionnaireResponse `json:"response"`
}

// NewWizard starts a wizard at step 1 with an empty response. Condition
// selections start as empty (non-nil) sets so serialized state always carries
// arrays.
func NewWizard(serviceName string) *Wizard {
	return &Wizard{
		ServiceName: serviceName,
		Step:        FirstStep,
		Response: models.QuestionnaireResponse{
			DiagnosedConditions:  []string{},
			ConditionsPreventing: []string{},
		},
	}
}

// Answer is one step's input. Each variant carries only the data its step
// collects, and Apply rejects answers aimed at any other step.
type Answer interface {
	Step() Step
	apply(w *Wizard) error
}

// AgeAnswer sets the age field (step 1).
type AgeAnswer struct{ Age string }

func (AgeAnswer) Step() Step { return StepAge }

func (a AgeAnswer) apply(w *Wizard) error {
	w.Response.Age = a.Age
	return nil
}

// HSAProviderAnswer selects the HSA provider (step 2).
type HSAProviderAnswer struct{ Provider string }

func (HSAProviderAnswer) Step() Step { return StepHSAProvider }

func (a HSAProviderAnswer) apply(w *Wizard) error {
	if !slices.Contains(HSAProviderNames, a.Provider) {
		return fmt.Errorf("%w: %q", ErrInvalidChoice, a.Provider)
	}
	w.Response.HSAProvider = a.Provider
	return nil
}

// StateAnswer selects the state of residence (step 3).
type StateAnswer struct{ State string }

func (StateAnswer) Step() Step { return StepStateOfResidence }

func (a StateAnswer) apply(w *Wizard) error {
	if !slices.Contains(States, a.State) {
		return fmt.Errorf("%w: %q", ErrInvalidChoice, a.State)
	}
	w.Response.StateOfResidence = a.State
	return nil
}

// DiagnosedToggle toggles a condition on the diagnosed list (step 5).
type DiagnosedToggle struct{ Condition string }

func (DiagnosedToggle) Step() Step { return StepDiagnosedConditions }

func (a DiagnosedToggle) apply(w *Wizard) error {
	if !slices.Contains(ConditionsForService(w.ServiceName), a.Condition) {
		return fmt.Errorf("%w: %q", ErrUnknownCondition, a.Condition)
	}
	w.Response.DiagnosedConditions = toggle(w.Response.DiagnosedConditions, a.Condition)
	return nil
}

// OtherDiagnosedAnswer sets the free-text other-conditions field (step 5).
type OtherDiagnosedAnswer struct{ Text string }

func (OtherDiagnosedAnswer) Step() Step { return StepDiagnosedConditions }

func (a OtherDiagnosedAnswer) apply(w *Wizard) error {
	w.Response.OtherDiagnosedConditions = a.Text
	return nil
}

// RiskFactorsAnswer sets the optional risk-factors text (step 6).
type RiskFactorsAnswer struct{ Text string }

func (RiskFactorsAnswer) Step() Step { return StepRiskFactors }

func (a RiskFactorsAnswer) apply(w *Wizard) error {
	w.Response.RiskFactors = a.Text
	return nil
}

// PreventingToggle toggles a condition on the preventing list (step 7).
type PreventingToggle struct{ Condition string }

func (PreventingToggle) Step() Step { return StepConditionsPreventing }

func (a PreventingToggle) apply(w *Wizard) error {
	if !slices.Contains(ConditionsForService(w.ServiceName), a.Condition) {
		return fmt.Errorf("%w: %q", ErrUnknownCondition, a.Condition)
	}
	w.Response.ConditionsPreventing = toggle(w.Response.ConditionsPreventing, a.Condition)
	return nil
}

// OtherPreventingAnswer sets the free-text other-preventing field (step 7).
type OtherPreventingAnswer struct{ Text string }

func (OtherPreventingAnswer) Step() Step { return StepConditionsPreventing }

func (a OtherPreventingAnswer) apply(w *Wizard) error {
	w.Response.OtherConditionsPreventing = a.Text
	return nil
}

// AttestationAnswer records the attestation checkbox (step 8).
type AttestationAnswer struct{ Accepted bool }

func (AttestationAnswer) Step() Step { return StepAttestation }

func (a AttestationAnswer) apply(w *Wizard) error {
	w.Response.Attestation = a.Accepted
	return nil
}

// Apply routes an answer to the response. Answers for any step other than
// the current one are rejected, so a step can only touch its own fields.
func (w *Wizard) Apply(a Answer) error {
	if a.Step() != w.Step {
		return fmt.Errorf("%w: answer for step %d, wizard at step %d", ErrWrongStep, a.Step(), w.Step)
	}
	return a.apply(w)
}

// Next advances to the following step if the current gate is satisfied.
func (w *Wizard) Next() error {
	if w.Step >= LastStep {
		return fmt.Errorf("already at final step %d", w.Step)
	}
	if !CanAdvance(w.Step, w.Response) {
		return fmt.Errorf("%w: step %d", ErrStepIncomplete, w.Step)
	}
	w.Step++
	return nil
}

// Back moves to the previous step. Always permitted; later steps' data is
// kept. Returns false at step 1, where going back means cancel.
func (w *Wizard) Back() bool {
	if w.Step <= FirstStep {
		return false
	}
	w.Step--
	return true
}

// Complete finalizes the wizard at the attestation step. The emitted
// response is a copy; the wizard has no further state of interest.
func (w *Wizard) Complete() (models.QuestionnaireResponse, error) {
	if w.Step != LastStep {
		return models.QuestionnaireResponse{}, ErrNotFinalStep
	}
	if !CanAdvance(LastStep, w.Response) {
		return models.QuestionnaireResponse{}, fmt.Errorf("%w: step %d", ErrStepIncomplete, LastStep)
	}
	resp := w.Response
	resp.DiagnosedConditions = slices.Clone(w.Response.DiagnosedConditions)
	resp.ConditionsPreventing = slices.Clone(w.Response.ConditionsPreventing)
	return resp, nil
}

// Conditions returns the condition list rendered on steps 5 and 7.
func (w *Wizard) Conditions() []string {
	return ConditionsForService(w.ServiceName)
}

// Prompt returns the risk-factor prompt for step 6.
func (w *Wizard) Prompt() string {
	return RiskFactorPrompt(w.ServiceName)
}

// toggle adds the condition if absent and removes it if present. Double
// toggling restores the original set.
func toggle(set []string, condition string) []string {
	if idx := slices.Index(set, condition); idx >= 0 {
		return slices.Delete(slices.Clone(set), idx, idx+1)
	}
	return append(slices.Clone(set), condition)
}
