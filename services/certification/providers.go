package certification

import (
	"fmt"

	"sagashealth/models"
)

// ErrUnknownProvider is returned when a provider code is not in the
// directory.
var ErrUnknownProvider = fmt.Errorf("unknown HSA provider")

// directory is the static HSA administrator table consulted for LMN formats
// and submission capabilities. Not fetched from any live registry.
var directory = []models.HSAProvider{
	{
		Name:        "HealthEquity",
		Code:        "healthequity",
		LMNRequired: true,
		LMNFormat:   "standard",
		RequiredFields: []string{
			"patient_name", "dob", "service_description", "icd10_code",
			"clinical_rationale", "provider_signature",
		},
		DigitalSubmission: true,
		APIEndpoint:       "https://api.healthequity.com/lmn",
		ContactInfo: models.HSAProviderContact{
			Phone:   "866-346-5800",
			Email:   "support@healthequity.com",
			Website: "https://www.healthequity.com",
		},
	},
	{
		Name:        "WEX",
		Code:        "wex",
		LMNRequired: true,
		LMNFormat:   "custom",
		RequiredFields: []string{
			"patient_info", "service_details", "medical_necessity",
			"provider_info", "attestation",
		},
		DigitalSubmission: true,
		APIEndpoint:       "https://api.wexinc.com/hsa/lmn",
		ContactInfo: models.HSAProviderContact{
			Phone:   "877-934-6389",
			Email:   "hsasupport@wexinc.com",
			Website: "https://www.wexinc.com",
		},
	},
	{
		Name:        "Optum",
		Code:        "optum",
		LMNRequired: true,
		LMNFormat:   "standard",
		RequiredFields: []string{
			"patient_name", "dob", "service_description", "icd10_code",
			"clinical_rationale", "provider_signature", "npi",
		},
		DigitalSubmission: false,
		ContactInfo: models.HSAProviderContact{
			Phone:   "866-234-8913",
			Email:   "hsasupport@optum.com",
			Website: "https://www.optum.com",
		},
	},
}

// Providers returns the HSA administrator directory.
func Providers() []models.HSAProvider {
	out := make([]models.HSAProvider, len(directory))
	copy(out, directory)
	return out
}

// ProviderByCode looks up a directory entry.
func ProviderByCode(code string) (*models.HSAProvider, error) {
	for i := range directory {
		if directory[i].Code == code {
			p := directory[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, code)
}
