package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerWritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	log.With(map[string]any{"component": "clipboard"}).Error(errors.New("denied"), "copy failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "clipboard", entry["component"])
	assert.Equal(t, "denied", entry["error"])
	assert.Equal(t, "copy failed", entry["message"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.Debug("x")
		log.Info("x")
		log.Warn("x")
		log.Error(nil, "x")
		assert.Nil(t, log.With(map[string]any{"a": 1}))
	})
}
