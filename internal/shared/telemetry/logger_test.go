package telemetry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInfoWritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := SetLogger(zap.New(core))
	t.Cleanup(restore)

	Info("analysis.complete", map[string]any{
		"status": "success",
		"bytes":  42,
	})

	entries := logs.FilterMessage("analysis.complete").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "success", fields["status"])
	assert.EqualValues(t, 42, fields["bytes"])
}

func TestErrorFieldsAreNamedErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := SetLogger(zap.New(core))
	t.Cleanup(restore)

	Error("llm.generate", map[string]any{"err": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].ContextMap()["err"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestInitKeepsLoggerUsable(t *testing.T) {
	restore := SetLogger(L())
	t.Cleanup(restore)

	require.NoError(t, Init("debug", "console"))
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))
}
