package logger

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestNewZapLogger(t *testing.T) {
	zl, err := NewZapLogger("warn")
	require.NoError(t, err)
	assert.False(t, zl.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zl.Core().Enabled(zapcore.WarnLevel))
}

func TestInit_RoutesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Init(zap.New(core), "info")

	adapter := NewSlogAdapter()
	adapter.Debug("hidden")
	adapter.Info("network read", "network", "ronin")
	adapter.Error("network failed", "network", "linea")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "network read", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "linea", entries[1].ContextMap()["network"])
}

func TestFatal_ExitsNonZero(t *testing.T) {
	if os.Getenv("SUPPLY_CHECKER_FATAL") == "1" {
		Fatal("startup failed", "error", "boom")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal_ExitsNonZero$")
	cmd.Env = append(os.Environ(), "SUPPLY_CHECKER_FATAL=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected non-zero exit, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), "startup failed")
}
