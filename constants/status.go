package constants

// DocumentStatus is the canonical status for a document moving through
// the processing pipeline.
type DocumentStatus string

// Stable values (stored and compared as these exact strings).
const (
	StatusProcessing  DocumentStatus = "processing"   // pipeline in progress
	StatusCompleted   DocumentStatus = "completed"    // done, confidence at or above threshold
	StatusNeedsReview DocumentStatus = "needs_review" // done, confidence below threshold
	StatusFailed      DocumentStatus = "failed"       // terminal stage failure
)
