package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLoggerLevels(t *testing.T) {
	log, buf := newBufferLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "d")
	log.Info(ctx, "i", "k", "v")
	log.Warn(ctx, "w")
	log.Error(ctx, "e")

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 4, lines)

	var rec map[string]any
	first, _, _ := bytes.Cut(buf.Bytes(), []byte("\n"))
	require.NoError(t, json.Unmarshal(first, &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "d", rec["msg"])
}

func TestSlogLoggerWith(t *testing.T) {
	log, buf := newBufferLogger(t)

	child := log.With("component", "auth")
	child.Info(context.Background(), "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "auth", rec["component"])
}
