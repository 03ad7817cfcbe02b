package logging

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_ContextAddsTraceFields(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "match locked", "match_id", "m-1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["match_id"] != "m-1" {
		t.Fatalf("unexpected match_id: %v", fields["match_id"])
	}
	if fields["trace_id"] != traceID.String() {
		t.Fatalf("unexpected trace_id: %v", fields["trace_id"])
	}
	if fields["span_id"] != spanID.String() {
		t.Fatalf("unexpected span_id: %v", fields["span_id"])
	}
}

func TestLogger_ErrorValuesAndOddArgs(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	logger.Warn("save failed", "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}
}

func TestLogger_FieldPassthroughAndDurations(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	logger.Info("cron tick", zap.Int("locked", 2), "took", 1500*time.Millisecond)

	fields := logs.All()[0].ContextMap()
	if fields["locked"] != int64(2) {
		t.Fatalf("unexpected locked field: %#v", fields["locked"])
	}
	if fields["took"] != "1.5s" {
		t.Fatalf("unexpected took field: %#v", fields["took"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	core, logs := observer.New(LevelWarn)
	logger := FromZap(zap.New(core))

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Error("shown")

	if logs.Len() != 1 {
		t.Fatalf("expected only the error entry, got %d", logs.Len())
	}
}

func TestDefault_NilSafe(t *testing.T) {
	SetDefault(nil)
	if Default() == nil {
		t.Fatalf("expected nop default logger")
	}

	var nilLogger *Logger
	nilLogger.Info("no panic")
	if nilLogger.With("k", "v") == nil {
		t.Fatalf("expected nop logger from nil With")
	}
}
