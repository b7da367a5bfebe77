package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/medintake/docpipeline/constants"
	"github.com/medintake/docpipeline/internal/batch"
	"github.com/medintake/docpipeline/internal/common"
	"github.com/medintake/docpipeline/internal/entity"
	"github.com/medintake/docpipeline/internal/export"
	"github.com/medintake/docpipeline/internal/ocr"
	"github.com/medintake/docpipeline/internal/pipeline"
	"github.com/medintake/docpipeline/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir       = flag.String("dir", "", "directory of documents to process (required)")
		out       = flag.String("out", "", "output XLSX file path (optional)")
		dbPath    = flag.String("db", "", "processing log path (overrides DOCPIPE_DB_PATH)")
		threshold = flag.Float64("threshold", -1, "confidence threshold override in [0,1]")
		workers   = flag.Int("workers", 0, "concurrent documents (overrides DOCPIPE_WORKERS)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is optional
	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *threshold >= 0 {
		cfg.Processing.ConfidenceThreshold = float32(*threshold)
	}
	if *workers > 0 {
		cfg.Processing.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := repository.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open processing log", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()
	repo := repository.NewDocumentRepository(db, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		DefaultLanguage: cfg.Processing.Language,
		SimulatedDelay:  cfg.OCR.SimulatedDelay,
	}, logger)
	proc := pipeline.NewProcessor(logger, extractor, nil, nil, nil)
	coord := batch.NewCoordinator(logger, proc, batch.WithWorkers(cfg.Processing.Workers))

	inputs, err := readInputs(*dir)
	if err != nil {
		logger.Error("failed to read input directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		logger.Warn("no processable files found", "dir", *dir)
		return
	}

	settings := entity.ProcessingSettings{
		EnableOCR:               cfg.Processing.EnableOCR,
		EnableClassification:    cfg.Processing.EnableClassification,
		EnableDataExtraction:    cfg.Processing.EnableDataExtraction,
		EnableQualityValidation: cfg.Processing.EnableQualityValidation,
		ConfidenceThreshold:     cfg.Processing.ConfidenceThreshold,
		Language:                cfg.Processing.Language,
	}

	results := coord.ProcessBatch(ctx, inputs, settings)

	var completed, review, failed int
	for _, doc := range results {
		if err := repo.Save(ctx, doc); err != nil {
			logger.Error("failed to save document", "filename", doc.Filename, "error", err)
		}
		switch doc.Status {
		case constants.StatusCompleted:
			completed++
		case constants.StatusNeedsReview:
			review++
		case constants.StatusFailed:
			failed++
		}
	}
	logger.Info("batch finished",
		"total", len(results),
		"completed", completed,
		"needs_review", review,
		"failed", failed,
	)

	if *out != "" {
		svc := export.NewService(repo, logger)
		data, err := svc.ExportDocumentsXLSX(ctx)
		if err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			logger.Error("failed to write workbook", "path", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("workbook written", "path", *out)
	}
}

// readInputs collects processable files from dir (non-recursive),
// filtered by the allowed extension list.
func readInputs(dir string) ([]entity.RawDocumentInput, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var inputs []entity.RawDocumentInput
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		inputs = append(inputs, entity.RawDocumentInput{
			Filename:    e.Name(),
			ContentType: constants.ContentTypeForExt(ext),
			Size:        int64(len(content)),
			Content:     content,
		})
	}
	return inputs, nil
}
