package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medintake/docpipeline/constants"
	"github.com/medintake/docpipeline/internal/classify"
	"github.com/medintake/docpipeline/internal/entity"
	"github.com/medintake/docpipeline/internal/extract"
	"github.com/medintake/docpipeline/internal/fields"
	"github.com/medintake/docpipeline/internal/ocr"
	"github.com/medintake/docpipeline/internal/quality"
)

// Processor sequences the per-document pipeline: text extraction, then
// classification, then field extraction, then quality validation. Each
// stage runs only when its settings flag is on; every stage after the
// first consumes the previous stage's output, so order is fixed.
type Processor struct {
	logger     *slog.Logger
	text       extract.TextExtractor
	classifier *classify.Classifier
	fields     *fields.Extractor
	quality    *quality.Validator
}

// NewProcessor wires the pipeline stages. A nil classifier, field
// extractor, or validator falls back to the stock implementation; the
// text extractor must be supplied by the caller (it is the pluggable
// OCR capability).
func NewProcessor(
	logger *slog.Logger,
	text extract.TextExtractor,
	classifier *classify.Classifier,
	fieldExtractor *fields.Extractor,
	validator *quality.Validator,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if classifier == nil {
		classifier = classify.NewClassifier(logger)
	}
	if fieldExtractor == nil {
		fieldExtractor = fields.NewExtractor(logger)
	}
	if validator == nil {
		validator = quality.NewValidator(logger)
	}
	return &Processor{
		logger:     logger,
		text:       text,
		classifier: classifier,
		fields:     fieldExtractor,
		quality:    validator,
	}
}

// ProcessDocument runs one document through the enabled stages and
// resolves its final status from the confidence threshold. A stage
// error aborts the whole document; nothing is partially committed and
// the caller (normally the batch coordinator) turns the error into a
// failed record.
//
// With classification disabled, confidence stays at its initialized 0,
// which falls below any positive threshold and resolves to
// needs_review. That is deliberate: an unclassified document is never
// trusted automatically.
func (p *Processor) ProcessDocument(ctx context.Context, input entity.RawDocumentInput, settings entity.ProcessingSettings) (*entity.ProcessedDocument, error) {
	start := time.Now()

	doc := &entity.ProcessedDocument{
		ID:             uuid.New(),
		Filename:       input.Filename,
		ContentType:    input.ContentType,
		FileSize:       input.Size,
		UploadedAt:     start.UTC(),
		Status:         constants.StatusProcessing,
		Classification: constants.Unknown,
	}

	if settings.EnableOCR {
		text, err := p.text.Extract(ctx, input.Content, settings.Language)
		if err != nil {
			return nil, fmt.Errorf("text extraction: %w", err)
		}
		doc.OCRText = text
		p.logger.Debug("ocr stage done",
			"filename", input.Filename,
			"text_chars", len(text),
			"text_confidence", ocr.TextConfidence(text),
		)
	}

	if settings.EnableClassification {
		res := p.classifier.Classify(doc.OCRText, input.Filename)
		doc.Classification = res.Category
		doc.Confidence = res.Confidence
	}

	if settings.EnableDataExtraction {
		doc.ExtractedData = p.fields.Extract(doc.OCRText, doc.Classification)
	}

	if settings.EnableQualityValidation {
		doc.Quality = p.quality.Validate(doc.OCRText, doc.ExtractedData)
	}

	doc.ProcessedAt = time.Now().UTC()
	doc.ProcessingTimeMS = time.Since(start).Milliseconds()

	if doc.Confidence >= settings.ConfidenceThreshold {
		doc.Status = constants.StatusCompleted
	} else {
		doc.Status = constants.StatusNeedsReview
	}

	p.logger.Info("document processed",
		"id", doc.ID,
		"filename", doc.Filename,
		"category", doc.Classification,
		"confidence", doc.Confidence,
		"status", doc.Status,
		"elapsed_ms", doc.ProcessingTimeMS,
	)
	return doc, nil
}
