package controller

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"gateway/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Forwarded-IP headers, in resolution order. These are the same headers the
// gateway sets on outbound auth calls, so an IP resolved here can be handed
// straight to the auth facade.
var forwardedIPHeaders = []string{"X-Forwarded-For", "X-Real-IP"} //nolint: gochecknoglobals

// ClientIP resolves the originating client address of a request. Forwarded-IP
// headers win over the connection's remote address; an X-Forwarded-For chain
// yields its first hop.
func ClientIP(r *http.Request) string {
	for _, h := range forwardedIPHeaders {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}

		// "client, proxy1, proxy2": the first hop is the client
		hop, _, _ := strings.Cut(v, ",")

		return strings.TrimSpace(hop)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// CtxKey is a string-based type used for storing values in request contexts.
// It avoids collisions with other packages' context keys.
type CtxKey string

const (
	// RequestIDKey is the context key under which the current request ID is stored.
	RequestIDKey CtxKey = "RequestID"
)

// RequestID returns the request ID stored in the context by WithAccessLog, or
// empty when the request did not pass through the middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// responseRecorder wraps http.ResponseWriter to capture the final status code
// and the number of body bytes written by the downstream handler.
type responseRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n

	return n, err
}

// WithAccessLog returns a middleware that scopes the context logger to the
// request: the request ID (taken from X-Request-Id or generated) and the
// resolved client IP are attached as logger fields, so everything the request
// triggers downstream, remote gateway calls included, logs with them. When the
// handler finishes, a structured access line is written.
func WithAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx = context.WithValue(ctx, RequestIDKey, requestID)

		clientIP := ClientIP(r)
		ctx = logger.WithFields(ctx,
			zap.String("requestId", requestID),
			zap.String("clientIp", clientIP))

		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info(ctx, "access",
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("userAgent", r.UserAgent()),
		)
	})
}
