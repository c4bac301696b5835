package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for text, want := range tests {
		got, err := ParseLevel(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", FormatJSON, "elco-codes", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("validated", zap.String("file", "north.yaml"), zap.Int("errors", 2))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "validated", entry["msg"])
	assert.Equal(t, "north.yaml", entry["file"])
	assert.Equal(t, float64(2), entry["errors"])
	assert.Equal(t, "elco-codes", entry["service_name"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", "", "", &buf)
	require.NoError(t, err)

	logger.Debug("decoded", zap.String("code", "P360M"))
	assert.Contains(t, buf.String(), "decoded")
	assert.Contains(t, buf.String(), "P360M")
}

func TestNew_Errors(t *testing.T) {
	_, err := New("info", "xml", "", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("verbose", FormatJSON, "", &bytes.Buffer{})
	assert.Error(t, err)
}
