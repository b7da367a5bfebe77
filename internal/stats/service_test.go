package stats

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medintake/docpipeline/constants"
	"github.com/medintake/docpipeline/internal/entity"
)

// fakeRepo serves a fixed document list.
type fakeRepo struct {
	docs []*entity.ProcessedDocument
}

func (f *fakeRepo) Save(context.Context, *entity.ProcessedDocument) error { return nil }
func (f *fakeRepo) GetByID(context.Context, uuid.UUID) (*entity.ProcessedDocument, error) {
	return nil, nil
}
func (f *fakeRepo) List(context.Context) ([]*entity.ProcessedDocument, error) {
	return f.docs, nil
}

func doc(status constants.DocumentStatus, category constants.Category, conf float32, ms int64) *entity.ProcessedDocument {
	return &entity.ProcessedDocument{
		ID:               uuid.New(),
		Status:           status,
		Classification:   category,
		Confidence:       conf,
		ProcessingTimeMS: ms,
	}
}

func TestStatsEmptyStore(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)
	out, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalDocuments)
	assert.Zero(t, out.AverageConfidence)
	assert.Empty(t, out.TopDocumentTypes)
}

func TestStatsRollup(t *testing.T) {
	repo := &fakeRepo{docs: []*entity.ProcessedDocument{
		doc(constants.StatusCompleted, constants.EmergencyRoomRecords, 0.8, 10),
		doc(constants.StatusCompleted, constants.EmergencyRoomRecords, 0.9, 20),
		doc(constants.StatusNeedsReview, constants.Unknown, 0.3, 30),
		doc(constants.StatusFailed, constants.Unknown, 0, 0),
	}}
	svc := NewService(repo, nil)

	out, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), out.TotalDocuments)
	assert.Equal(t, int64(2), out.SuccessfullyProcessed)
	assert.InDelta(t, 15.0, out.AverageProcessingTimeMS, 1e-9) // (10+20+30+0)/4
	assert.InDelta(t, 0.5, out.AverageConfidence, 1e-6)        // (0.8+0.9+0.3+0)/4
	// 2 of the 3 non-failed documents classified to a concrete type.
	assert.InDelta(t, 2.0/3.0, out.ClassificationAccuracy, 1e-9)

	require.NotEmpty(t, out.TopDocumentTypes)
	assert.Equal(t, constants.EmergencyRoomRecords, out.TopDocumentTypes[0].Category)
	assert.Equal(t, int64(2), out.TopDocumentTypes[0].Count)
}

func TestStatsTopTypesCapped(t *testing.T) {
	var docs []*entity.ProcessedDocument
	for _, cat := range constants.AllCategories() {
		docs = append(docs, doc(constants.StatusCompleted, cat, 0.8, 5))
	}
	svc := NewService(&fakeRepo{docs: docs}, nil)

	out, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Len(t, out.TopDocumentTypes, topTypesLimit)
}
