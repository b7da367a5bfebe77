package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/medintake/docpipeline/constants"
	"github.com/medintake/docpipeline/internal/common"
	"github.com/medintake/docpipeline/internal/entity"
	"github.com/medintake/docpipeline/internal/fields"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS processed_document (
	id                 TEXT PRIMARY KEY,
	filename           TEXT NOT NULL,
	content_type       TEXT NOT NULL DEFAULT '',
	file_size          INTEGER NOT NULL DEFAULT 0,
	uploaded_at        TEXT NOT NULL,
	processed_at       TEXT NOT NULL,
	status             TEXT NOT NULL,
	classification     TEXT NOT NULL,
	confidence         REAL NOT NULL DEFAULT 0,
	extracted_json     TEXT NOT NULL DEFAULT '{}',
	quality_json       TEXT NOT NULL DEFAULT '{}',
	processing_time_ms INTEGER NOT NULL DEFAULT 0,
	ocr_text           TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_processed_document_status ON processed_document(status);
CREATE INDEX IF NOT EXISTS idx_processed_document_classification ON processed_document(classification);
`

// Open opens (or creates) the processing log database at path and
// applies the schema. Use ":memory:" for an in-memory store.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// DocumentRepository persists processed documents for statistics and
// export. Persistence is a supplement around the core pipeline, not a
// stage of it.
type DocumentRepository interface {
	Save(ctx context.Context, doc *entity.ProcessedDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProcessedDocument, error)
	List(ctx context.Context) ([]*entity.ProcessedDocument, error)
}

type documentRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewDocumentRepository(db *sql.DB, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepository{db: db, logger: logger}
}

// Save inserts one processed document. Extracted data is serialized and
// validated against the canonical schema before it is written.
func (r *documentRepository) Save(ctx context.Context, doc *entity.ProcessedDocument) error {
	extractedJSON, err := json.Marshal(doc.ExtractedData)
	if err != nil {
		return common.WrapError(err, "marshal extracted data")
	}
	if err := fields.ValidateExtractedJSON(extractedJSON); err != nil {
		return common.WrapError(err, "validate extracted data")
	}
	qualityJSON, err := json.Marshal(doc.Quality)
	if err != nil {
		return common.WrapError(err, "marshal quality validation")
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO processed_document
			(id, filename, content_type, file_size, uploaded_at, processed_at,
			 status, classification, confidence, extracted_json, quality_json,
			 processing_time_ms, ocr_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID.String(),
		doc.Filename,
		doc.ContentType,
		doc.FileSize,
		doc.UploadedAt.UTC().Format(time.RFC3339Nano),
		doc.ProcessedAt.UTC().Format(time.RFC3339Nano),
		string(doc.Status),
		string(doc.Classification),
		doc.Confidence,
		string(extractedJSON),
		string(qualityJSON),
		doc.ProcessingTimeMS,
		doc.OCRText,
	)
	if err != nil {
		r.logger.Error("failed to save document", "id", doc.ID, "error", err)
		return common.WrapError(err, "insert processed document")
	}
	return nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProcessedDocument, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` FROM processed_document WHERE id = ?`, id.String())
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return doc, err
}

func (r *documentRepository) List(ctx context.Context) ([]*entity.ProcessedDocument, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` FROM processed_document ORDER BY processed_at`)
	if err != nil {
		return nil, common.WrapError(err, "query processed documents")
	}
	defer rows.Close()

	var docs []*entity.ProcessedDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

const selectColumns = `
	SELECT id, filename, content_type, file_size, uploaded_at, processed_at,
	       status, classification, confidence, extracted_json, quality_json,
	       processing_time_ms, ocr_text`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*entity.ProcessedDocument, error) {
	var (
		doc           entity.ProcessedDocument
		idStr         string
		uploadedAt    string
		processedAt   string
		status        string
		category      string
		extractedJSON string
		qualityJSON   string
	)
	err := row.Scan(
		&idStr, &doc.Filename, &doc.ContentType, &doc.FileSize,
		&uploadedAt, &processedAt, &status, &category, &doc.Confidence,
		&extractedJSON, &qualityJSON, &doc.ProcessingTimeMS, &doc.OCRText,
	)
	if err != nil {
		return nil, err
	}

	doc.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, common.WrapError(err, "parse document id")
	}
	doc.UploadedAt, err = time.Parse(time.RFC3339Nano, uploadedAt)
	if err != nil {
		return nil, common.WrapError(err, "parse uploaded_at")
	}
	doc.ProcessedAt, err = time.Parse(time.RFC3339Nano, processedAt)
	if err != nil {
		return nil, common.WrapError(err, "parse processed_at")
	}
	doc.Status = constants.DocumentStatus(status)
	doc.Classification = constants.Category(category)

	if err := json.Unmarshal([]byte(extractedJSON), &doc.ExtractedData); err != nil {
		return nil, common.WrapError(err, "unmarshal extracted data")
	}
	if err := json.Unmarshal([]byte(qualityJSON), &doc.Quality); err != nil {
		return nil, common.WrapError(err, "unmarshal quality validation")
	}
	return &doc, nil
}
