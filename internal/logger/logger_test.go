package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLog(t *testing.T) {
	for _, level := range []slog.Level{slog.LevelError, slog.LevelInfo, slog.LevelWarn, slog.LevelDebug} {
		l, err := NewLogger(level)
		assert.NoError(t, err)
		l.Info("проверка", slog.String("уровень", level.String()))
		l.Close()
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"что-то", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelFromString(tt.level), tt.level)
	}
}
