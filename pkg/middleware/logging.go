package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/configuration"
)

type responseCaptureWriter struct {
	http.ResponseWriter
	statusCode    int
	statusWritten bool
}

func (w *responseCaptureWriter) WriteHeader(code int) {
	if !w.statusWritten {
		w.statusCode = code
		w.statusWritten = true
		w.ResponseWriter.WriteHeader(code)
	}
}

// Status returns the HTTP status code
func (w *responseCaptureWriter) Status() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}

func (w *responseCaptureWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// WithLogger attaches a request-scoped logger entry to the context and logs
// each request with method, path, status, duration and client address.
func WithLogger(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			entry := logger.WithFields(logrus.Fields{
				"request-id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"ip":         ClientIP(r),
			})

			ctx := composables.WithLogger(r.Context(), entry)
			capture := &responseCaptureWriter{ResponseWriter: w}
			next.ServeHTTP(capture, r.WithContext(ctx))

			entry.WithFields(logrus.Fields{
				"status":   capture.Status(),
				"duration": time.Since(start).String(),
			}).Info("request completed")
		})
	}
}

// ClientIP resolves the client network address, preferring the configured
// real-IP header over RemoteAddr.
func ClientIP(r *http.Request) string {
	if ip := r.Header.Get(configuration.Use().RealIPHeader); ip != "" {
		return strings.TrimSpace(strings.Split(ip, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
