package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("cricket-team/internal/usecase")

// startUsecaseSpan opens a child span named like "usecase.Service.Method".
// Calls without a parent span, such as clubctl runs, get a no-op span.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if name == "" || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}

	attrs := []attribute.KeyValue{}
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		attrs = append(attrs,
			attribute.String("code.namespace", name[:i]),
			attribute.String("code.function", name[i+1:]),
		)
	}
	return tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal), trace.WithAttributes(attrs...))
}
