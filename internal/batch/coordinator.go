package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medintake/docpipeline/constants"
	"github.com/medintake/docpipeline/internal/entity"
	"github.com/medintake/docpipeline/internal/pipeline"
)

// Coordinator runs the pipeline over a bounded, caller-driven batch.
// One bad file never aborts the rest: a per-file failure is converted
// into a failed-status record in its slot.
type Coordinator struct {
	logger  *slog.Logger
	proc    *pipeline.Processor
	workers int
}

type Option func(*Coordinator)

// WithWorkers enables processing up to n documents concurrently.
// Documents are independent, so no locks are needed; results land in
// indexed slots and output order always matches input order.
func WithWorkers(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

func NewCoordinator(logger *slog.Logger, proc *pipeline.Processor, opts ...Option) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Coordinator{logger: logger, proc: proc, workers: 1}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ProcessBatch processes every input and returns one result per input,
// in input order. A failing document yields a synthesized failed record
// embedding the cause; the remaining files still process.
func (c *Coordinator) ProcessBatch(ctx context.Context, inputs []entity.RawDocumentInput, settings entity.ProcessingSettings) []*entity.ProcessedDocument {
	results := make([]*entity.ProcessedDocument, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	if c.workers <= 1 {
		for i, in := range inputs {
			results[i] = c.processOne(ctx, in, settings)
		}
		return results
	}

	workers := c.workers
	if workers > len(inputs) {
		workers = len(inputs)
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				results[i] = c.processOne(ctx, inputs[i], settings)
			}
		}()
	}
	for i := range inputs {
		idx <- i
	}
	close(idx)
	wg.Wait()

	return results
}

func (c *Coordinator) processOne(ctx context.Context, input entity.RawDocumentInput, settings entity.ProcessingSettings) *entity.ProcessedDocument {
	doc, err := c.proc.ProcessDocument(ctx, input, settings)
	if err != nil {
		c.logger.Error("document processing failed",
			"filename", input.Filename, "error", err)
		return failedDocument(input, err)
	}
	return doc
}

// failedDocument synthesizes the record for a file the pipeline could
// not process: failed status, zeroed scores and confidence, and a
// single high-severity issue carrying the cause.
func failedDocument(input entity.RawDocumentInput, cause error) *entity.ProcessedDocument {
	now := time.Now().UTC()
	return &entity.ProcessedDocument{
		ID:             uuid.New(),
		Filename:       input.Filename,
		ContentType:    input.ContentType,
		FileSize:       input.Size,
		UploadedAt:     now,
		ProcessedAt:    now,
		Status:         constants.StatusFailed,
		Classification: constants.Unknown,
		Quality: entity.QualityValidation{
			Issues: []entity.ValidationIssue{{
				Type:        constants.IssueIncompleteData,
				Description: fmt.Sprintf("Document processing failed: %v", cause),
				Severity:    constants.SeverityHigh,
				Confidence:  1.0,
			}},
		},
	}
}
