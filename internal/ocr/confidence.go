package ocr

import (
	"regexp"
	"strings"
)

var (
	reDate      = regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`)
	reICDCode   = regexp.MustCompile(`\b[a-tv-z]\d{2}(\.\d{1,4})?\b`)
	reFieldTags = regexp.MustCompile(`\b(patient|dob|provider|physician|doctor|diagnosis)\b`)
)

func hasDatePattern(s string) bool     { return reDate.MatchString(s) }
func hasCodePattern(s string) bool     { return reICDCode.MatchString(s) }
func hasFieldTagPattern(s string) bool { return reFieldTags.MatchString(s) }

// TextConfidence is a naive heuristic over decoded text characteristics:
// boost if we see common medical-record artifacts (date-ish, code-ish,
// labeled-field-ish). Each adds ~0.15-0.2 over a 0.2 base, capped at 1.
func TextConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasDatePattern(txtL) {
		score += 0.2
	}
	if hasFieldTagPattern(txtL) {
		score += 0.2
	}
	if hasCodePattern(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
