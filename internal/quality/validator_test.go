package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medintake/docpipeline/constants"
	"github.com/medintake/docpipeline/internal/entity"
)

func completeData() entity.ExtractedData {
	return entity.ExtractedData{
		PatientDemographics: &entity.PatientDemographics{Name: "John Smith", Confidence: 0.85},
		ServiceDates: []entity.ServiceDate{
			{Date: "04/02/2021", ServiceType: "office-visit", Confidence: 0.9},
		},
	}
}

func TestValidateCleanDocument(t *testing.T) {
	v := NewValidator(nil)
	text := strings.Repeat("legible medical record content ", 10)

	qv := v.Validate(text, completeData())

	assert.Equal(t, 100.0, qv.CompletenessScore)
	assert.Equal(t, 90.0, qv.LegibilityScore)
	assert.Equal(t, 85.0, qv.AccuracyScore)
	assert.InDelta(t, (100.0+90.0+85.0)/3, qv.OverallScore, 1e-9)
	assert.Empty(t, qv.Issues)
	assert.Empty(t, qv.MissingDocuments)
}

func TestValidateShortTextMissingDate(t *testing.T) {
	v := NewValidator(nil)
	// 40 chars of text, a recognizable name, no service dates.
	text := "Patient: John Smith, brief illegible scan"
	data := entity.ExtractedData{
		PatientDemographics: &entity.PatientDemographics{Name: "John Smith", Confidence: 0.85},
	}

	qv := v.Validate(text[:40], data)

	assert.Equal(t, 85.0, qv.CompletenessScore)
	assert.Equal(t, 70.0, qv.LegibilityScore)
	assert.Equal(t, 85.0, qv.AccuracyScore)
	assert.InDelta(t, 80.0, qv.OverallScore, 1e-9)
	require.Len(t, qv.Issues, 2)
	assert.Empty(t, qv.MissingDocuments)
}

func TestValidateMissingPatientName(t *testing.T) {
	v := NewValidator(nil)
	text := strings.Repeat("x", 150)

	tests := []struct {
		name string
		data entity.ExtractedData
	}{
		{"nil demographics", entity.ExtractedData{
			ServiceDates: []entity.ServiceDate{{Date: "01/01/2020", Confidence: 0.9}},
		}},
		{"demographics without name", entity.ExtractedData{
			PatientDemographics: &entity.PatientDemographics{DateOfBirth: "01/02/1990", Confidence: 0.85},
			ServiceDates:        []entity.ServiceDate{{Date: "01/01/2020", Confidence: 0.9}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qv := v.Validate(text, tt.data)
			assert.Equal(t, 80.0, qv.CompletenessScore)
			require.Len(t, qv.Issues, 1)
			issue := qv.Issues[0]
			assert.Equal(t, constants.IssueIncompleteData, issue.Type)
			assert.Equal(t, constants.SeverityHigh, issue.Severity)
		})
	}
}

func TestValidateWorstCase(t *testing.T) {
	v := NewValidator(nil)

	qv := v.Validate("", entity.ExtractedData{})

	assert.Equal(t, 65.0, qv.CompletenessScore)
	assert.Equal(t, 70.0, qv.LegibilityScore)
	assert.Equal(t, 85.0, qv.AccuracyScore)
	assert.InDelta(t, (65.0+70.0+85.0)/3, qv.OverallScore, 1e-9)
	require.Len(t, qv.Issues, 3)

	// The in-scope penalties bottom out above the missing-document
	// cutoff, so the note stays empty even here.
	assert.GreaterOrEqual(t, qv.OverallScore, 70.0)
	assert.Empty(t, qv.MissingDocuments)
}

func TestValidateScoreBounds(t *testing.T) {
	v := NewValidator(nil)
	cases := []struct {
		text string
		data entity.ExtractedData
	}{
		{"", entity.ExtractedData{}},
		{strings.Repeat("y", 500), completeData()},
		{"tiny", completeData()},
	}
	for _, c := range cases {
		qv := v.Validate(c.text, c.data)
		for _, score := range []float64{qv.CompletenessScore, qv.LegibilityScore, qv.AccuracyScore, qv.OverallScore} {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
		for _, issue := range qv.Issues {
			assert.GreaterOrEqual(t, issue.Confidence, float32(0))
			assert.LessOrEqual(t, issue.Confidence, float32(1))
		}
	}
}
