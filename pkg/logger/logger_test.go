package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/callcenter/pkg/logger"
)

func TestHandler_AddsContextFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, slog.LevelDebug)

	ctx := logger.SetRequestID(context.Background(), "req-1")
	ctx = logger.SetUserID(ctx, "user_3")
	ctx = logger.SetProvider(ctx, "slack")

	l.InfoContext(ctx, "token exchanged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	require.Equal(t, "token exchanged", entry["msg"])
	require.Equal(t, "req-1", entry["request_id"])
	require.Equal(t, "user_3", entry["user_id"])
	require.Equal(t, "slack", entry["provider"])
	require.Equal(t, "callcenter-admin", entry["origin_service"])
}

func TestHandler_AnonymousUserIsNull(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, slog.LevelInfo).With("component", "n8n")

	l.InfoContext(context.Background(), "webhook received")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	v, ok := entry["user_id"]
	require.True(t, ok)
	require.Nil(t, v)
	require.Equal(t, "n8n", entry["component"])
	require.Equal(t, "callcenter-admin", entry["origin_service"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, logger.ParseLevel(tt.in), tt.in)
	}
}
