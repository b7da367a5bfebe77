package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainText(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	text, err := e.Extract(context.Background(), []byte("Patient: John Smith\nDOB: 03/15/1985"), "en")
	require.NoError(t, err)
	assert.Equal(t, "Patient: John Smith\nDOB: 03/15/1985", text)
}

func TestExtractBinaryGarbage(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	// Mostly control bytes and invalid UTF-8; must not error.
	content := []byte{0x00, 0x01, 0xff, 0xfe, 0x02, 0x00, 0x03}
	text, err := e.Extract(context.Background(), content, "en")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractStripsControlBytes(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	text, err := e.Extract(context.Background(), []byte("lab\x00 results\x07"), "en")
	require.NoError(t, err)
	assert.Equal(t, "lab results", text)
}

func TestExtractCancelledContext(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Extract(ctx, []byte("anything"), "en")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTextConfidence(t *testing.T) {
	empty := TextConfidence("")
	rich := TextConfidence("Patient: John Smith, DOB: 03/15/1985, diagnosis M54.5. " +
		"Seen in clinic for follow-up of lower back pain, improving with therapy.")

	assert.InDelta(t, 0.2, empty, 1e-6)
	assert.Greater(t, rich, empty)
	assert.LessOrEqual(t, rich, float32(1.0))
}
