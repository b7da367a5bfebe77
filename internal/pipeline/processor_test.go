package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medintake/docpipeline/constants"
	"github.com/medintake/docpipeline/internal/entity"
)

// stubExtractor returns canned text, or a canned error.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, _ []byte, _ string) (string, error) {
	return s.text, s.err
}

const reportText = `Emergency Department Report
Patient: John Smith
DOB: 03/15/1985
Date of Service: 04/02/2021
Treated for acute lumbar strain, M54.5. Discharged in stable condition.`

func sampleInput() entity.RawDocumentInput {
	return entity.RawDocumentInput{
		Filename:    "er-note.pdf",
		ContentType: "application/pdf",
		Size:        2048,
		Content:     []byte(reportText),
	}
}

func TestProcessDocumentFullPipeline(t *testing.T) {
	proc := NewProcessor(nil, &stubExtractor{text: reportText}, nil, nil, nil)
	settings := entity.DefaultSettings()

	doc, err := proc.ProcessDocument(context.Background(), sampleInput(), settings)
	require.NoError(t, err)

	assert.NotEqual(t, "", doc.ID.String())
	assert.Equal(t, "er-note.pdf", doc.Filename)
	assert.Equal(t, int64(2048), doc.FileSize)
	assert.Equal(t, reportText, doc.OCRText)

	assert.Equal(t, constants.EmergencyRoomRecords, doc.Classification)
	assert.InDelta(t, 0.8, doc.Confidence, 1e-6)
	// 0.8 confidence clears the 0.7 default threshold.
	assert.Equal(t, constants.StatusCompleted, doc.Status)

	require.NotNil(t, doc.ExtractedData.PatientDemographics)
	assert.Equal(t, "John Smith", doc.ExtractedData.PatientDemographics.Name)
	require.Len(t, doc.ExtractedData.ServiceDates, 1)
	require.Len(t, doc.ExtractedData.DiagnosisCodes, 1)

	assert.Equal(t, 100.0, doc.Quality.CompletenessScore)
	assert.Equal(t, 90.0, doc.Quality.LegibilityScore)

	assert.False(t, doc.ProcessedAt.IsZero())
	assert.False(t, doc.ProcessedAt.Before(doc.UploadedAt))
	assert.GreaterOrEqual(t, doc.ProcessingTimeMS, int64(0))
}

func TestProcessDocumentNeedsReviewBelowThreshold(t *testing.T) {
	proc := NewProcessor(nil, &stubExtractor{text: reportText}, nil, nil, nil)
	settings := entity.DefaultSettings()
	settings.ConfidenceThreshold = 0.9

	doc, err := proc.ProcessDocument(context.Background(), sampleInput(), settings)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusNeedsReview, doc.Status)
}

func TestProcessDocumentClassificationDisabled(t *testing.T) {
	proc := NewProcessor(nil, &stubExtractor{text: reportText}, nil, nil, nil)
	settings := entity.DefaultSettings()
	settings.EnableClassification = false

	doc, err := proc.ProcessDocument(context.Background(), sampleInput(), settings)
	require.NoError(t, err)

	// Confidence stays at its initialized zero, which cannot clear a
	// positive threshold: the document lands in review.
	assert.Equal(t, constants.Unknown, doc.Classification)
	assert.Zero(t, doc.Confidence)
	assert.Equal(t, constants.StatusNeedsReview, doc.Status)
}

func TestProcessDocumentStageGating(t *testing.T) {
	t.Run("ocr disabled", func(t *testing.T) {
		proc := NewProcessor(nil, &stubExtractor{text: reportText}, nil, nil, nil)
		settings := entity.DefaultSettings()
		settings.EnableOCR = false

		doc, err := proc.ProcessDocument(context.Background(), sampleInput(), settings)
		require.NoError(t, err)
		assert.Empty(t, doc.OCRText)
		// Filename alone cannot classify this input.
		assert.Equal(t, constants.Unknown, doc.Classification)
	})

	t.Run("extraction disabled", func(t *testing.T) {
		proc := NewProcessor(nil, &stubExtractor{text: reportText}, nil, nil, nil)
		settings := entity.DefaultSettings()
		settings.EnableDataExtraction = false

		doc, err := proc.ProcessDocument(context.Background(), sampleInput(), settings)
		require.NoError(t, err)
		assert.Nil(t, doc.ExtractedData.PatientDemographics)
		assert.Nil(t, doc.ExtractedData.ServiceDates)
		// Validation still ran, over the empty extraction result.
		assert.NotEmpty(t, doc.Quality.Issues)
	})

	t.Run("validation disabled", func(t *testing.T) {
		proc := NewProcessor(nil, &stubExtractor{text: reportText}, nil, nil, nil)
		settings := entity.DefaultSettings()
		settings.EnableQualityValidation = false

		doc, err := proc.ProcessDocument(context.Background(), sampleInput(), settings)
		require.NoError(t, err)
		assert.Zero(t, doc.Quality)
	})
}

func TestProcessDocumentExtractorFailure(t *testing.T) {
	boom := errors.New("backend unavailable")
	proc := NewProcessor(nil, &stubExtractor{err: boom}, nil, nil, nil)

	doc, err := proc.ProcessDocument(context.Background(), sampleInput(), entity.DefaultSettings())
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, boom)
}

func TestProcessDocumentConfidenceBounds(t *testing.T) {
	texts := []string{"", reportText, "laboratory specimen reference range lab results"}
	for _, text := range texts {
		proc := NewProcessor(nil, &stubExtractor{text: text}, nil, nil, nil)
		doc, err := proc.ProcessDocument(context.Background(), sampleInput(), entity.DefaultSettings())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, doc.Confidence, float32(0))
		assert.LessOrEqual(t, doc.Confidence, float32(1))
	}
}
