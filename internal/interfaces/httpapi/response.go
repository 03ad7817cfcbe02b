package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-team/internal/usecase"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	apiVersion  = "2.0"
	errorDomain = "cricket-team"
)

type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// errorClass is the wire shape of one usecase sentinel.
type errorClass struct {
	sentinel   error
	HTTPStatus int
	Reason     string
	Status     string
}

var errorClasses = []errorClass{
	{sentinel: usecase.ErrInvalidInput, HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"},
	{sentinel: usecase.ErrUnauthorized, HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized", Status: "UNAUTHENTICATED"},
	{sentinel: usecase.ErrNotFound, HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"},
	{sentinel: usecase.ErrConflict, HTTPStatus: http.StatusConflict, Reason: "conflict", Status: "ALREADY_EXISTS"},
	{sentinel: usecase.ErrDependencyUnavailable, HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"},
}

var internalErrorClass = errorClass{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(_ context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{APIVersion: apiVersion, Data: data})
}

// writeError renders err in the error envelope. Unclassified errors are
// reported as internal and their text stays on the span only.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	class := mapError(ctx, err)

	message := err.Error()
	if class.HTTPStatus >= http.StatusInternalServerError {
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, class.Reason)
		if class.HTTPStatus == http.StatusInternalServerError {
			message = "internal server error"
		}
	}

	writeJSON(w, class.HTTPStatus, envelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    class.HTTPStatus,
			Message: message,
			Status:  class.Status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: class.Reason, Message: message}},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeError(ctx, w, errors.New("internal server error"))
}

func mapError(_ context.Context, err error) errorClass {
	for _, class := range errorClasses {
		if errors.Is(err, class.sentinel) {
			return class
		}
	}
	return internalErrorClass
}
