package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel tests the ParseLogLevel function.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zapcore.Level
		valid    bool
	}{
		{name: "debug", input: "debug", expected: zapcore.DebugLevel, valid: true},
		{name: "info", input: "info", expected: zapcore.InfoLevel, valid: true},
		{name: "warn", input: "warn", expected: zapcore.WarnLevel, valid: true},
		{name: "error", input: "error", expected: zapcore.ErrorLevel, valid: true},
		{name: "fatal", input: "fatal", expected: zapcore.FatalLevel, valid: true},
		{name: "uppercase", input: "WARN", expected: zapcore.WarnLevel, valid: true},
		{name: "surrounding spaces", input: "  error ", expected: zapcore.ErrorLevel, valid: true},
		{name: "unknown level", input: "verbose", expected: zapcore.InfoLevel, valid: false},
		{name: "empty string", input: "", expected: zapcore.InfoLevel, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, valid := ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

// TestNew tests that New accepts a nil level.
func TestNew(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, New(nil))
	assert.NotNil(t, New(zapcore.WarnLevel))
}

// TestSetLevel tests the SetLevel function.
func TestSetLevel(t *testing.T) {
	// Not parallel: mutates the global level.
	originalLevel := Level()
	defer SetLevel(originalLevel)

	SetLevel(zapcore.ErrorLevel)
	assert.Equal(t, zapcore.ErrorLevel, Level())

	SetLevel(zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, Level())
}

// TestSetLogger tests the SetLogger function.
func TestSetLogger(t *testing.T) {
	// Not parallel: mutates the global logger.
	originalLogger := Logger()
	defer SetLogger(originalLogger)

	newLogger := New(zapcore.DebugLevel)
	SetLogger(newLogger)

	assert.Equal(t, newLogger, Logger())
}

// TestFromContext tests that a logger stored in the context takes precedence over the global one.
func TestFromContext(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	contextLogger := zap.New(core).Sugar()

	ctx := ToContext(context.Background(), contextLogger)
	require.Equal(t, contextLogger, FromContext(ctx))

	Infof(ctx, "moved %s", "a.txt")
	WarnKV(ctx, "archive skipped", "path", "b.zip")
	Debug(ctx, "walking")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "moved a.txt", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "b.zip", entries[1].ContextMap()["path"])
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
}

// TestFromContextFallsBackToGlobal tests the fallback to the global logger.
func TestFromContextFallsBackToGlobal(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, FromContext(context.Background()))
}

// TestWithNameAndKV tests the context decorators.
func TestWithNameAndKV(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())

	ctx = WithName(ctx, "organizer")
	ctx = WithKV(ctx, "root", "/tmp/in")

	Info(ctx, "started")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "organizer", entries[0].LoggerName)
	assert.Equal(t, "/tmp/in", entries[0].ContextMap()["root"])
}

// TestLoggerThreadSafety tests concurrent logging through the global logger.
func TestLoggerThreadSafety(_ *testing.T) {
	ctx := context.Background()
	done := make(chan struct{}, 10)

	for range 10 {
		go func() {
			Debug(ctx, "concurrent message")

			done <- struct{}{}
		}()
	}

	for range 10 {
		<-done
	}
}
