package constants

// Classifier confidence model. A single keyword hit lands at 0.8, which
// clears the default threshold; the unknown floor stays well below it so
// unclassified documents route to review.
const (
	ClassifierBaseConfidence    = 0.70
	ClassifierPerKeywordBoost   = 0.10
	ClassifierMaxConfidence     = 0.95
	ClassifierUnknownConfidence = 0.30
)

// Per-extraction-kind confidences. Fixed by pattern specificity, not
// computed at runtime.
const (
	DemographicsConfidence  = 0.85
	ProviderConfidence      = 0.80
	ServiceDateConfidence   = 0.90
	DiagnosisCodeConfidence = 0.75
	BillingAmountConfidence = 0.70
)

// Quality scoring baselines and penalties, on a 0-100 scale. Accuracy
// has no in-scope heuristic and is carried as a fixed discount.
const (
	CompletenessBaseline = 100.0
	LegibilityBaseline   = 90.0
	AccuracyBaseline     = 85.0

	MissingPatientNamePenalty = 20.0
	MissingServiceDatePenalty = 15.0
	ShortTextPenalty          = 20.0

	MinLegibleTextLength = 100
	LowOverallScore      = 70.0
)

// DefaultConfidenceThreshold routes documents between completed and
// needs_review when the caller does not supply one.
const DefaultConfidenceThreshold = 0.70
