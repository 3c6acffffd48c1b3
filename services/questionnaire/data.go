package questionnaire

// HSAProviderNames is the list offered on the HSA provider step.
var HSAProviderNames = []string{
	"Unknown / Not listed",
	"HealthEquity",
	"WEX",
	"Optum",
	"Bank of America",
	"Fidelity",
	"FSAFEDS",
	"HealthTrust",
	"Navia",
	"Lively",
	"Thatch",
	"P&A Group",
	"PIOPAC Fidelity",
	"Melody Benefit",
}

// States is the list offered on the state-of-residence step.
var States = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
	"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
	"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia",
	"Wisconsin", "Wyoming",
}

// AttestationText is the statement the user accepts on the final step.
const AttestationText = "I attest that I am receiving this service/product primarily for the purpose of curing, mitigating, treating, or preventing the diagnosed medical condition(s) I have identified. I further affirm that I would not obtain these service(s) in the absence of such medical condition(s), and that this request is consistent with the medical necessity determination provided by a licensed healthcare provider."

// serviceConditions maps a service name to the condition list rendered on the
// diagnosed/preventing steps.
var serviceConditions = map[string][]string{
	"Nutritional Counseling": {
		"Diabetes", "High Blood Pressure", "Heart Disease", "Obesity", "High Cholesterol",
		"Metabolic Syndrome", "Digestive Issues", "Food Allergies", "Eating Disorders",
	},
	"Therapeutic Massage": {
		"Back Pain", "Neck Pain", "Muscle Tension", "Stress", "Anxiety", "Headaches",
		"Sciatica", "Fibromyalgia", "Arthritis", "Sports Injuries",
	},
	"Stretching & Mobility Session": {
		"Limited Mobility", "Joint Stiffness", "Posture Issues", "Back Pain", "Neck Pain",
		"Arthritis", "Sports Injuries", "Recovery from Surgery", "Chronic Pain",
	},
	"Yoga Therapy Session": {
		"Anxiety", "Depression", "Stress", "Back Pain", "Balance Issues", "Flexibility Issues",
		"Chronic Pain", "Sleep Disorders", "High Blood Pressure", "Arthritis",
	},
	"Pilates Rehabilitation": {
		"Back Pain", "Posture Issues", "Core Weakness", "Injury Recovery", "Arthritis",
		"Limited Mobility", "Balance Issues", "Chronic Pain", "Sports Injuries",
	},
	"Chiropractic Adjustment": {
		"Back Pain", "Neck Pain", "Headaches", "Sciatica", "Joint Pain", "Posture Issues",
		"Sports Injuries", "Chronic Pain", "Limited Mobility",
	},
	"Acupuncture Treatment": {
		"Chronic Pain", "Anxiety", "Depression", "Migraines", "Digestive Issues", "Insomnia",
		"Stress", "Arthritis", "Fibromyalgia", "Allergies",
	},
	"Fitness Training Session": {
		"Obesity", "High Blood Pressure", "Diabetes", "Heart Disease", "High Cholesterol",
		"Metabolic Syndrome", "Muscle Weakness", "Balance Issues", "Limited Mobility",
	},
}

// defaultConditions is the named fallback for services without a specific
// mapping, so the lookup is total.
var defaultConditions = []string{
	"Back Pain", "Neck Pain", "Headaches", "Stress", "Anxiety", "Chronic Pain",
	"Diabetes", "High Blood Pressure", "Heart Disease", "Arthritis",
}

// riskFactorPrompts maps a service name to the free-text prompt on the risk
// factors step.
var riskFactorPrompts = map[string]string{
	"Nutritional Counseling":  "Tell us about any risk factors for diabetes, heart disease, or metabolic conditions (family history, lifestyle factors, etc.)",
	"Therapeutic Massage":     "Tell us about any risk factors for chronic pain, stress-related conditions, or musculoskeletal issues",
	"Yoga Therapy Session":    "Tell us about any risk factors for anxiety, depression, stress, or physical limitations",
	"Pilates Rehabilitation":  "Tell us about any risk factors for back pain, posture issues, or injury recurrence",
	"Chiropractic Adjustment": "Tell us about any risk factors for spinal issues, chronic pain, or musculoskeletal problems",
	"Acupuncture Treatment":   "Tell us about any risk factors for chronic pain, stress, or conditions that may benefit from acupuncture",
}

const defaultRiskFactorPrompt = "Tell us about any risk factors you know of, and why you want to prevent these conditions."

// ConditionsForService returns the condition list for a service name. The
// lookup is total: unmapped names get the default condition set.
func ConditionsForService(serviceName string) []string {
	if conditions, ok := serviceConditions[serviceName]; ok {
		out := make([]string, len(conditions))
		copy(out, conditions)
		return out
	}
	out := make([]string, len(defaultConditions))
	copy(out, defaultConditions)
	return out
}

// RiskFactorPrompt returns the risk-factor prompt for a service name, with a
// generic default.
func RiskFactorPrompt(serviceName string) string {
	if prompt, ok := riskFactorPrompts[serviceName]; ok {
		return prompt
	}
	return defaultRiskFactorPrompt
}
