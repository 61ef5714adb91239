package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceLevelHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		levels     []slog.Level
		wantSource bool
	}{
		{"info not listed", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn listed", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error listed", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"info in debug mode", slog.LevelInfo, []slog.Level{slog.LevelDebug, slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := slog.New(NewSourceLevelHandler(slog.NewTextHandler(&buf, nil), tt.levels...))

			l.Log(context.Background(), tt.level, "hello")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestSourceLevelHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewSourceLevelHandler(slog.NewTextHandler(&buf, nil), slog.LevelError))

	l.With("user_id", "u1").WithGroup("req").Info("hello", "path", "/datarequests")

	out := buf.String()
	assert.Contains(t, out, "user_id=u1")
	assert.Contains(t, out, "req.path=/datarequests")
	assert.NotContains(t, out, "source=")
}

func TestSourceLevelHandler_Enabled(t *testing.T) {
	h := NewSourceLevelHandler(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}))

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
