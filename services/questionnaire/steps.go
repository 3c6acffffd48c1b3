package questionnaire

import "sagashealth/models"

// Step identifies one of the eight wizard steps.
type Step int

const (
	StepAge Step = iota + 1
	StepHSAProvider
	StepStateOfResidence
	StepMedicalHistoryInfo
	StepDiagnosedConditions
	StepRiskFactors
	StepConditionsPreventing
	StepAttestation
)

// FirstStep and LastStep bound the wizard traversal.
const (
	FirstStep = StepAge
	LastStep  = StepAttestation
)

// Valid reports whether s is within the wizard range.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Title returns the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepAge:
		return "Age"
	case StepHSAProvider:
		return "HSA Provider"
	case StepStateOfResidence:
		return "State of Residence"
	case StepMedicalHistoryInfo:
		return "Medical History Information"
	case StepDiagnosedConditions:
		return "Diagnosed Conditions"
	case StepRiskFactors:
		return "Risk Factors"
	case StepConditionsPreventing:
		return "Conditions I am Trying to Prevent"
	case StepAttestation:
		return "Attestation"
	default:
		return ""
	}
}

// CanAdvance reports whether the step's completion gate is satisfied.
// Informational and optional steps always pass.
func CanAdvance(step Step, r models.QuestionnaireResponse) bool {
	switch step {
	case StepAge:
		return r.Age != ""
	case StepHSAProvider:
		return r.HSAProvider != ""
	case StepStateOfResidence:
		return r.StateOfResidence != ""
	case StepMedicalHistoryInfo:
		return true
	case StepDiagnosedConditions:
		return len(r.DiagnosedConditions) > 0
	case StepRiskFactors:
		return true
	case StepConditionsPreventing:
		return len(r.ConditionsPreventing) > 0
	case StepAttestation:
		return r.Attestation
	default:
		return true
	}
}
