package classify

import (
	"log/slog"
	"strings"

	"github.com/medintake/docpipeline/constants"
)

// Result is a classification outcome for one document.
type Result struct {
	Category   constants.Category
	Confidence float32
	Matches    int
}

// Classifier scores document text against per-category keyword lists.
// Classification is deterministic: the same (text, filename) pair always
// yields the same result.
type Classifier struct {
	table  []CategoryKeywords
	logger *slog.Logger
}

func NewClassifier(logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{table: defaultKeywordTable, logger: logger}
}

// NewClassifierWithTable builds a classifier over a caller-supplied
// ordered keyword table. Order is the tie-break contract.
func NewClassifierWithTable(table []CategoryKeywords, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{table: table, logger: logger}
}

// Classify picks the first category (in table order) with at least one
// keyword hit in the text or filename. Confidence starts at 0.7 and
// gains 0.1 per hit, capped at 0.95. No hit anywhere yields
// unknown/0.3, which sits below any realistic threshold and routes the
// document to review.
func (c *Classifier) Classify(text, filename string) Result {
	textL := strings.ToLower(text)
	nameL := strings.ToLower(filename)

	for _, ck := range c.table {
		matches := 0
		for _, kw := range ck.Keywords {
			if strings.Contains(textL, kw) || strings.Contains(nameL, kw) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		conf := constants.ClassifierBaseConfidence + constants.ClassifierPerKeywordBoost*float64(matches)
		if conf > constants.ClassifierMaxConfidence {
			conf = constants.ClassifierMaxConfidence
		}
		c.logger.Debug("document classified",
			"category", ck.Category, "matches", matches, "confidence", conf)
		return Result{Category: ck.Category, Confidence: float32(conf), Matches: matches}
	}

	return Result{
		Category:   constants.Unknown,
		Confidence: constants.ClassifierUnknownConfidence,
	}
}
