package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestCaptureRequestBody_RecordsHeadAndKeepsBody(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		seen = string(raw)
		w.WriteHeader(http.StatusNoContent)
	})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := provider.Tracer("test").Start(r.Context(), "server")
		defer span.End()
		CaptureRequestBody(5, inner).ServeHTTP(w, r.WithContext(ctx))
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/players", strings.NewReader(`{"name":"Ravi"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != `{"name":"Ravi"}` {
		t.Fatalf("handler body was truncated: %q", seen)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	var captured string
	for _, attr := range spans[0].Attributes() {
		if attr.Key == "http.request.body" {
			captured = attr.Value.AsString()
		}
	}
	if captured != `{"nam` {
		t.Fatalf("unexpected captured body: %q", captured)
	}
}

func TestCaptureRequestBody_SkipsLoginAndReads(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := provider.Tracer("test").Start(r.Context(), "server")
		defer span.End()
		CaptureRequestBody(64, inner).ServeHTTP(w, r.WithContext(ctx))
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/v1/admin/login", strings.NewReader(`{"password":"secret"}`)),
		httptest.NewRequest(http.MethodGet, "/v1/players", nil),
	} {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	for _, span := range recorder.Ended() {
		for _, attr := range span.Attributes() {
			if attr.Key == "http.request.body" {
				t.Fatalf("unexpected body capture on span %s", span.Name())
			}
		}
	}
}

func TestShouldTraceRequest(t *testing.T) {
	tests := map[string]bool{
		"/healthz":            false,
		" /HEALTHZ ":          false,
		"/livez":              false,
		"/readyz":             false,
		"/v1/players":         true,
		"/v1/matches/m-1":     true,
		"/v1/admin/dashboard": true,
	}
	for path, want := range tests {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", path, got, want)
		}
	}
}
