package quality

import (
	"log/slog"

	"github.com/medintake/docpipeline/constants"
	"github.com/medintake/docpipeline/internal/entity"
)

// Validator scores extracted data and raw text for downstream trust
// decisions. Scores start at fixed baselines and are penalized by
// evidence of problems; accuracy has no in-scope heuristic and stays at
// its baseline discount.
type Validator struct {
	logger *slog.Logger
}

func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{logger: logger}
}

// Validate computes completeness/legibility/accuracy sub-scores and the
// overall mean, emitting a structured issue for every penalty applied.
func (v *Validator) Validate(text string, data entity.ExtractedData) entity.QualityValidation {
	qv := entity.QualityValidation{
		CompletenessScore: constants.CompletenessBaseline,
		LegibilityScore:   constants.LegibilityBaseline,
		AccuracyScore:     constants.AccuracyBaseline,
	}

	if data.PatientDemographics == nil || data.PatientDemographics.Name == "" {
		qv.CompletenessScore -= constants.MissingPatientNamePenalty
		qv.Issues = append(qv.Issues, entity.ValidationIssue{
			Type:        constants.IssueIncompleteData,
			Description: "Patient name could not be extracted from the document",
			Severity:    constants.SeverityHigh,
			Confidence:  0.9,
		})
	}

	if len(data.ServiceDates) == 0 {
		qv.CompletenessScore -= constants.MissingServiceDatePenalty
		qv.Issues = append(qv.Issues, entity.ValidationIssue{
			Type:        constants.IssueIncompleteData,
			Description: "No service dates were found in the document",
			Severity:    constants.SeverityMedium,
			Confidence:  0.8,
		})
	}

	if len(text) < constants.MinLegibleTextLength {
		qv.LegibilityScore -= constants.ShortTextPenalty
		qv.Issues = append(qv.Issues, entity.ValidationIssue{
			Type:        constants.IssueLegibility,
			Description: "Extracted text is too short; the source may be illegible or a poor scan",
			Severity:    constants.SeverityMedium,
			Confidence:  0.8,
		})
	}

	qv.OverallScore = (qv.CompletenessScore + qv.LegibilityScore + qv.AccuracyScore) / 3

	if qv.OverallScore < constants.LowOverallScore {
		qv.MissingDocuments = append(qv.MissingDocuments,
			"Additional documentation may be needed to complete this record")
	}

	v.logger.Debug("quality validated",
		"completeness", qv.CompletenessScore,
		"legibility", qv.LegibilityScore,
		"accuracy", qv.AccuracyScore,
		"overall", qv.OverallScore,
		"issues", len(qv.Issues),
	)
	return qv
}
