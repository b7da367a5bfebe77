package ocr

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Config tunes the stub extractor.
type Config struct {
	// DefaultLanguage is used when the caller passes an empty language.
	DefaultLanguage string
	// SimulatedDelay mimics a slow OCR backend. Zero disables it.
	SimulatedDelay time.Duration
}

// Extractor is a text-only stand-in for a real OCR backend. It decodes
// whatever readable text the input bytes contain and drops the rest, so
// binary garbage comes back near-empty instead of erroring.
type Extractor struct {
	cfg    Config
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "en"
	}
	return &Extractor{cfg: cfg, logger: logger}
}

// Extract implements extract.TextExtractor.
func (e *Extractor) Extract(ctx context.Context, content []byte, language string) (string, error) {
	if e.cfg.SimulatedDelay > 0 {
		select {
		case <-time.After(e.cfg.SimulatedDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}

	if language == "" {
		language = e.cfg.DefaultLanguage
	}

	text := decodeReadable(content)
	e.logger.Debug("text extracted",
		"language", language,
		"input_bytes", len(content),
		"text_chars", utf8.RuneCountInString(text),
	)
	return text, nil
}

// decodeReadable keeps printable runes and normal whitespace, replacing
// everything else (control bytes, invalid UTF-8) with nothing.
func decodeReadable(content []byte) string {
	var b strings.Builder
	b.Grow(len(content))
	for len(content) > 0 {
		r, size := utf8.DecodeRune(content)
		content = content[size:]
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
