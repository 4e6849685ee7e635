package api

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// CustomHeaderName and CustomHeaderValue are injected into every response,
// success or error.
const (
	CustomHeaderName  = "X-Custom-Header"
	CustomHeaderValue = "Custom Value"
)

// RequestIDHeader carries the per-request id assigned by the logging
// middleware.
const RequestIDHeader = "X-Request-Id"

// withMiddleware wraps the handler with the fixed interceptor chain.
// Order (outermost to innermost): recovery -> request logging -> header
// injection -> mux. Recovery sits outermost so a panic anywhere below it
// still produces the JSON 500 body.
func (a *API) withMiddleware(handler http.Handler) http.Handler {
	return a.recoveryMiddleware(a.loggingMiddleware(a.headerMiddleware(handler)))
}

// headerMiddleware sets the fixed custom response header on every response.
func (a *API) headerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(CustomHeaderName, CustomHeaderValue)
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware assigns a request id and logs one line per request with
// method, path, status, and duration.
func (a *API) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := uuid.NewString()
		w.Header().Set(RequestIDHeader, requestID)

		lrw := &statusCapturingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)

		a.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", lrw.statusCode,
			"duration", time.Since(start),
			"requestId", requestID,
		)
	})
}

// recoveryMiddleware converts handler panics into the uniform 500 error
// body. The panic value and stack are logged server-side only.
func (a *API) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				a.log.Error("handler panicked",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				writeError(w, http.StatusInternalServerError, ErrMsgInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// statusCapturingResponseWriter wraps http.ResponseWriter to capture the
// status code for logging.
type statusCapturingResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
}

// WriteHeader captures the status code before writing the header.
func (w *statusCapturingResponseWriter) WriteHeader(code int) {
	if !w.headerWritten {
		w.statusCode = code
		w.headerWritten = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Write captures the implicit 200 OK if the header was not written yet.
func (w *statusCapturingResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.statusCode = http.StatusOK
		w.headerWritten = true
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (w *statusCapturingResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
