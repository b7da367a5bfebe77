package entity

import "github.com/medintake/docpipeline/constants"

// CategoryCount is one row of the per-category rollup.
type CategoryCount struct {
	Category constants.Category `json:"category"`
	Count    int64              `json:"count"`
}

// ProcessingStats is a read-only summary over previously processed
// documents. Computed on demand, never updated live.
type ProcessingStats struct {
	TotalDocuments          int64           `json:"total_documents"`
	SuccessfullyProcessed   int64           `json:"successfully_processed"`
	AverageProcessingTimeMS float64         `json:"average_processing_time_ms"`
	AverageConfidence       float64         `json:"average_confidence"`
	ClassificationAccuracy  float64         `json:"classification_accuracy"`
	TopDocumentTypes        []CategoryCount `json:"top_document_types,omitempty"`
}
