package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "skybooker"}, &buf)

	log.Info().Str("page", "search").Msg("search submitted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search submitted", entry["message"])
	assert.Equal(t, "skybooker", entry["service"])
	assert.Equal(t, "search", entry["page"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "warn", Format: "json", ServiceName: "skybooker"}, &buf)

	log.Info().Msg("suppressed")
	log.Warn().Msg("emitted")

	assert.NotContains(t, buf.String(), "suppressed")
	assert.Contains(t, buf.String(), "emitted")
}

func TestNewWithOutput_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "loud", Format: "json", ServiceName: "skybooker"}, &buf)

	log.Debug().Msg("debug suppressed")
	log.Info().Msg("info emitted")

	assert.NotContains(t, buf.String(), "debug suppressed")
	assert.Contains(t, buf.String(), "info emitted")
}

func TestNewWithOutput_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "skybooker"}, &buf)

	log.Info().Msg("hello")

	// Console output is human-readable, not JSON.
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(DefaultConfig(), &buf)

	log.WithRequestID("req-123").Info().Msg("tagged")

	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
}

func TestWithSession(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(DefaultConfig(), &buf)

	log.WithSession("sess-9").Info().Msg("tagged")

	assert.Contains(t, buf.String(), `"session_id":"sess-9"`)
}

func TestNop(t *testing.T) {
	// Must not panic and must produce nothing.
	log := Nop()
	log.Info().Msg("silent")
	log.Error().Msg("silent")
}
