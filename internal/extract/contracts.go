package extract

import "context"

// TextExtractor is Stage 1: raw document bytes -> plain text.
//
// Implementations must not fail on well-formed input; unreadable or
// corrupt content yields an empty (or near-empty) string so downstream
// stages can detect poor quality from low text length. Errors are
// reserved for genuinely unrecoverable conditions such as a cancelled
// context or a broken backend.
type TextExtractor interface {
	Extract(ctx context.Context, content []byte, language string) (string, error)
}
