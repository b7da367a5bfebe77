package entity

import "github.com/medintake/docpipeline/constants"

// ValidationIssue is a single structured quality finding.
type ValidationIssue struct {
	Type        constants.IssueType `json:"type"`
	Description string              `json:"description"`
	Severity    constants.Severity  `json:"severity"`
	Confidence  float32             `json:"confidence"`
}

// QualityValidation scores a processed document on a 0-100 scale.
// OverallScore is the arithmetic mean of the three sub-scores.
type QualityValidation struct {
	CompletenessScore float64           `json:"completeness_score"`
	LegibilityScore   float64           `json:"legibility_score"`
	AccuracyScore     float64           `json:"accuracy_score"`
	OverallScore      float64           `json:"overall_score"`
	Issues            []ValidationIssue `json:"issues,omitempty"`
	MissingDocuments  []string          `json:"missing_documents,omitempty"`
}
