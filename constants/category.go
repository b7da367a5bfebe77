package constants

// Category is the canonical document classification for a processed record.
type Category string

const (
	EmergencyRoomRecords    Category = "emergency-room-records"
	SpecialistConsultation  Category = "specialist-consultation"
	LaboratoryResults       Category = "laboratory-results"
	RadiologyReports        Category = "radiology-reports"
	PhysicalTherapyNotes    Category = "physical-therapy-notes"
	BillingStatements       Category = "billing-statements"
	InsuranceCorrespondence Category = "insurance-correspondence"
	Unknown                 Category = "unknown"
)

// allCategories is ordered. Classification ties break toward the
// earliest entry, so this order is part of the contract.
var allCategories = []Category{
	EmergencyRoomRecords,
	SpecialistConsultation,
	LaboratoryResults,
	RadiologyReports,
	PhysicalTherapyNotes,
	BillingStatements,
	InsuranceCorrespondence,
}

// AllCategories returns the classifiable categories in declaration order.
// Unknown is excluded; it is the fallback, never a candidate.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// clinicalFamily holds the categories whose documents carry ICD-style
// diagnosis codes worth extracting.
var clinicalFamily = map[Category]struct{}{
	EmergencyRoomRecords:   {},
	SpecialistConsultation: {},
	PhysicalTherapyNotes:   {},
}

// IsClinical reports whether diagnosis-code extraction applies to cat.
func IsClinical(cat Category) bool {
	_, ok := clinicalFamily[cat]
	return ok
}
