package stats

import (
	"context"
	"log/slog"
	"sort"

	"github.com/medintake/docpipeline/constants"
	"github.com/medintake/docpipeline/internal/entity"
	"github.com/medintake/docpipeline/internal/repository"
)

// Service is a read-only reporting view over the processing log. It
// never mutates anything; stats are recomputed per call.
type Service struct {
	repo   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(repo repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// topTypesLimit caps the per-category rollup to the most common types.
const topTypesLimit = 5

// Stats summarizes throughput and quality across processed documents.
// Classification accuracy is the share of non-failed documents that
// classified to a concrete category (ground truth is unavailable, so
// "not unknown" is the proxy).
func (s *Service) Stats(ctx context.Context) (*entity.ProcessingStats, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &entity.ProcessingStats{TotalDocuments: int64(len(docs))}
	if len(docs) == 0 {
		return out, nil
	}

	var (
		sumTimeMS     int64
		sumConfidence float64
		processed     int64
		classified    int64
		byCategory    = make(map[constants.Category]int64)
	)
	for _, d := range docs {
		sumTimeMS += d.ProcessingTimeMS
		sumConfidence += float64(d.Confidence)
		if d.Status == constants.StatusCompleted {
			out.SuccessfullyProcessed++
		}
		if d.Status != constants.StatusFailed {
			processed++
			if d.Classification != constants.Unknown {
				classified++
			}
		}
		byCategory[d.Classification]++
	}

	out.AverageProcessingTimeMS = float64(sumTimeMS) / float64(len(docs))
	out.AverageConfidence = sumConfidence / float64(len(docs))
	if processed > 0 {
		out.ClassificationAccuracy = float64(classified) / float64(processed)
	}

	for cat, n := range byCategory {
		out.TopDocumentTypes = append(out.TopDocumentTypes, entity.CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(out.TopDocumentTypes, func(i, j int) bool {
		a, b := out.TopDocumentTypes[i], out.TopDocumentTypes[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})
	if len(out.TopDocumentTypes) > topTypesLimit {
		out.TopDocumentTypes = out.TopDocumentTypes[:topTypesLimit]
	}

	return out, nil
}
