package models

// QuestionnaireResponse is the health questionnaire collected across the
// eight wizard steps. It is owned by the wizard until submission, then
// embedded read-only in the BookingRecord.
type QuestionnaireResponse struct {
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
