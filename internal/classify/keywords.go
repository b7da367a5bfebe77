package classify

import "github.com/medintake/docpipeline/constants"

// CategoryKeywords binds one category to the phrases that indicate it.
type CategoryKeywords struct {
	Category constants.Category
	Keywords []string
}

// defaultKeywordTable drives classification. It is an ordered slice, not
// a map: the first category with any keyword hit wins, so declaration
// order is the documented tie-break, not an iteration accident.
// Keywords are matched as case-insensitive substrings of the document
// text and filename.
var defaultKeywordTable = []CategoryKeywords{
	{
		Category: constants.EmergencyRoomRecords,
		Keywords: []string{"emergency department", "emergency room", "er visit", "triage", "chief complaint"},
	},
	{
		Category: constants.SpecialistConsultation,
		Keywords: []string{"consultation", "consult note", "referring physician", "specialist"},
	},
	{
		Category: constants.LaboratoryResults,
		Keywords: []string{"laboratory", "lab results", "specimen", "reference range"},
	},
	{
		Category: constants.RadiologyReports,
		Keywords: []string{"radiology", "x-ray", "mri", "ct scan", "ultrasound", "impression:"},
	},
	{
		Category: constants.PhysicalTherapyNotes,
		Keywords: []string{"physical therapy", "rehabilitation", "range of motion", "therapy session"},
	},
	{
		Category: constants.BillingStatements,
		Keywords: []string{"billing statement", "amount due", "statement of charges", "patient responsibility", "cpt code"},
	},
	{
		Category: constants.InsuranceCorrespondence,
		Keywords: []string{"insurance", "explanation of benefits", "claim number", "policy number", "adjuster"},
	},
}
