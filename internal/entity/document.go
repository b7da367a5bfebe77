package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/medintake/docpipeline/constants"
)

// RawDocumentInput is a caller-owned file handed to the pipeline. The
// pipeline only reads it.
type RawDocumentInput struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Content     []byte `json:"-"`
}

// ExtractionRule is a caller-supplied extraction extension point.
// Declared in settings but not yet consumed by any stage.
type ExtractionRule struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	TargetField string `json:"target_field"`
}

// ProcessingSettings configures a pipeline run. Immutable for the
// duration of the run; supplied by the caller per call.
type ProcessingSettings struct {
	EnableOCR               bool             `json:"enable_ocr"`
	EnableClassification    bool             `json:"enable_classification"`
	EnableDataExtraction    bool             `json:"enable_data_extraction"`
	EnableQualityValidation bool             `json:"enable_quality_validation"`
	ConfidenceThreshold     float32          `json:"confidence_threshold"`
	Language                string           `json:"language"`
	CustomExtractionRules   []ExtractionRule `json:"custom_extraction_rules,omitempty"`
}

// DefaultSettings enables every stage with the stock threshold.
func DefaultSettings() ProcessingSettings {
	return ProcessingSettings{
		EnableOCR:               true,
		EnableClassification:    true,
		EnableDataExtraction:    true,
		EnableQualityValidation: true,
		ConfidenceThreshold:     constants.DefaultConfidenceThreshold,
		Language:                "en",
	}
}

// ProcessedDocument is the pipeline's output record. Created once per
// input file; never mutated after the pipeline returns it.
type ProcessedDocument struct {
	ID               uuid.UUID                `json:"id"`
	Filename         string                   `json:"filename"`
	ContentType      string                   `json:"content_type"`
	FileSize         int64                    `json:"file_size"`
	UploadedAt       time.Time                `json:"uploaded_at"`
	ProcessedAt      time.Time                `json:"processed_at"`
	Status           constants.DocumentStatus `json:"status"`
	Classification   constants.Category       `json:"classification"`
	Confidence       float32                  `json:"confidence"`
	ExtractedData    ExtractedData            `json:"extracted_data"`
	Quality          QualityValidation        `json:"quality_validation"`
	ProcessingTimeMS int64                    `json:"processing_time_ms"`
	OCRText          string                   `json:"ocr_text,omitempty"`
}
