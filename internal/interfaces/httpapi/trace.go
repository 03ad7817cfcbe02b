package httpapi

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("cricket-team/internal/interfaces/httpapi")

// startHandlerSpan opens a child of the otelhttp server span for one handler.
// Requests the server span filtered out, such as /healthz, get no span.
func startHandlerSpan(r *http.Request, operation string) (context.Context, trace.Span) {
	ctx := r.Context()
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}

	ctx, span := apiTracer.Start(ctx, handlerSpanName(operation))
	if r.Pattern != "" {
		span.SetAttributes(attribute.String("http.route", r.Pattern))
	}
	return ctx, span
}

func handlerSpanName(operation string) string {
	return "httpapi.Handler." + operation
}
