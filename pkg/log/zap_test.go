package log_test

import (
	"context"
	"testing"

	"jarvis-assistant/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	t.Run("Invalid level falls back", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "nope", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
		if l == nil {
			t.Fatal("expected logger")
		}
		l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")
	})

	t.Run("Console with color", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true})
		l.Debug(context.Background(), "debug line")
	})

	t.Run("Nop", func(t *testing.T) {
		log.NewNop().Warn(context.Background(), "discarded")
	})
}
