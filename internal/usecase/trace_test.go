package usecase

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartUsecaseSpan_WithoutParentIsNoop(t *testing.T) {
	ctx := context.Background()
	got, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	if span.SpanContext().IsValid() || span.IsRecording() {
		t.Fatalf("expected no-op span without a parent")
	}
	if got != ctx {
		t.Fatalf("expected context to pass through")
	}
}

func TestStartUsecaseSpan_ChildCarriesCodeAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	parentCtx, parent := provider.Tracer("test").Start(context.Background(), "handler")
	_, span := startUsecaseSpan(parentCtx, "usecase.MatchService.LockStartedMatches")
	span.End()
	parent.End()

	for _, ended := range recorder.Ended() {
		if ended.Name() != "usecase.MatchService.LockStartedMatches" {
			continue
		}
		attrs := map[string]string{}
		for _, kv := range ended.Attributes() {
			attrs[string(kv.Key)] = kv.Value.AsString()
		}
		if attrs["code.namespace"] != "usecase.MatchService" || attrs["code.function"] != "LockStartedMatches" {
			t.Fatalf("unexpected attributes: %v", attrs)
		}
		return
	}
	t.Fatalf("usecase span not recorded")
}
