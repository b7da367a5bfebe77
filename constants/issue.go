package constants

// IssueType classifies a quality validation finding.
type IssueType string

const (
	IssueIncompleteData  IssueType = "incomplete_data"
	IssueLegibility      IssueType = "legibility"
	IssueAccuracy        IssueType = "accuracy"
	IssueMissingDocument IssueType = "missing_document"
)

// Severity ranks how much a validation issue should worry a reviewer.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)
