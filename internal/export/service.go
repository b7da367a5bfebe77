package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/medintake/docpipeline/internal/repository"
)

// Service is a tiny façade over the repository that produces XLSX bytes
// for case workflow handoff.
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

// ExportDocumentsXLSX returns an XLSX workbook (as bytes) listing every
// processed document in the log.
func (s *Service) ExportDocumentsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"File Name",
		"Category",
		"Status",
		"Confidence",
		"Completeness",
		"Legibility",
		"Accuracy",
		"Overall Score",
		"Processing Time (ms)",
		"Processed At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.Filename)
		write(2, string(d.Classification))
		write(3, string(d.Status))
		write(4, fmt.Sprintf("%.2f", d.Confidence))
		write(5, d.Quality.CompletenessScore)
		write(6, d.Quality.LegibilityScore)
		write(7, d.Quality.AccuracyScore)
		write(8, fmt.Sprintf("%.1f", d.Quality.OverallScore))
		write(9, d.ProcessingTimeMS)
		if !d.ProcessedAt.IsZero() {
			write(10, d.ProcessedAt.UTC().Format(time.RFC3339))
		} else {
			write(10, "")
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("exported documents workbook",
		"rows", len(docs), "elapsed", time.Since(start))
	return buf.Bytes(), nil
}
