package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-team/internal/domain/admin"
	"github.com/riskibarqy/cricket-team/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	verifier admin.TokenVerifier,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	internalJobToken string,
	opts ...RouterOption,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	var options routerOptions
	for _, opt := range opts {
		opt(&options)
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPublicRoutes(mux, handler)
	registerAdminRoutes(mux, handler, verifier)
	registerInternalJobRoutes(mux, handler, internalJobToken)

	var chain http.Handler = RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux)))
	if options.captureBodyMaxBytes > 0 {
		chain = CaptureRequestBody(options.captureBodyMaxBytes, chain)
	}
	return RequestTracing(chain)
}

type routerOptions struct {
	captureBodyMaxBytes int
}

type RouterOption func(*routerOptions)

// WithRequestBodyCapture records up to maxBytes of each write request body on
// the server span.
func WithRequestBodyCapture(maxBytes int) RouterOption {
	return func(o *routerOptions) {
		o.captureBodyMaxBytes = maxBytes
	}
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
