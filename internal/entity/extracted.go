package entity

// ExtractedData holds the structured fields pulled out of a document.
// A nil sub-record or empty slice means "not found", never "found but
// empty" — downstream consumers rely on that distinction.
type ExtractedData struct {
	PatientDemographics *PatientDemographics `json:"patient_demographics,omitempty"`
	ProviderInformation *ProviderInformation `json:"provider_information,omitempty"`
	ServiceDates        []ServiceDate        `json:"service_dates,omitempty"`
	DiagnosisCodes      []DiagnosisCode      `json:"diagnosis_codes,omitempty"`
	BillingAmounts      []BillingAmount      `json:"billing_amounts,omitempty"`
}

// PatientDemographics identifies the patient the document concerns.
type PatientDemographics struct {
	Name        string  `json:"name,omitempty"`
	DateOfBirth string  `json:"date_of_birth,omitempty"`
	Address     string  `json:"address,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Confidence  float32 `json:"confidence"`
}

// ProviderInformation identifies the treating provider.
type ProviderInformation struct {
	Name       string  `json:"name,omitempty"`
	Specialty  string  `json:"specialty,omitempty"`
	Address    string  `json:"address,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Confidence float32 `json:"confidence"`
}

// ServiceDate is a dated service event found in the document.
type ServiceDate struct {
	Date        string  `json:"date"`
	ServiceType string  `json:"service_type,omitempty"`
	Confidence  float32 `json:"confidence"`
}

// DiagnosisCode is an ICD-style code found in clinical documents.
type DiagnosisCode struct {
	Code        string  `json:"code"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type,omitempty"`
	Confidence  float32 `json:"confidence"`
}

// BillingAmount is a single charge line found in billing documents.
type BillingAmount struct {
	ChargeDescription string  `json:"charge_description"`
	Amount            float64 `json:"amount"`
	DateOfService     string  `json:"date_of_service,omitempty"`
	Confidence        float32 `json:"confidence"`
}
