package models

import "time"

// HSAProviderContact holds the support channels of an HSA administrator.
type HSAProviderContact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// HSAProvider describes an HSA administrator in the static directory:
// whether it requires an LMN, which fields its letter format expects, and
// whether it accepts digital submission.
type HSAProvider struct {
	Name              string             `json:"name"`
	Code              string             `json:"code"`
	LMNRequired       bool               `json:"lmnRequired"`
	LMNFormat         string             `json:"lmnFormat"`
	RequiredFields    []string           `json:"requiredFields"`
	DigitalSubmission bool               `json:"digitalSubmission"`
	APIEndpoint       string             `json:"apiEndpoint,omitempty"`
	ContactInfo       HSAProviderContact `json:"contactInfo"`
}

// LMNDocument is a generated Letter of Medical Necessity. Ephemeral: it is
// returned to the caller and never persisted.
type LMNDocument struct {
	LMNID             string    `json:"lmnId"`
	Provider          string    `json:"provider"`
	PatientName       string    `json:"patientName"`
	ServiceName       string    `json:"serviceName"`
	Conditions        []string  `json:"conditions"`
	ClinicalRationale string    `json:"clinicalRationale"`
	GeneratedAt       time.Time `json:"generatedAt"`
	Status            string    `json:"status"`
}
