package middlewarex

import (
	"log/slog"
	"net"
	"net/http"

	"housing_price/pkg/contextx"
	"housing_price/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Logger attaches a request-scoped logger to the context. Must run after
// TraceID.
func Logger(base *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			attrs := []any{
				slog.String(logx.FieldURL, r.URL.Path),
				slog.String(logx.FieldHTTPMethod, r.Method),
				slog.String(logx.FieldIP, clientIP(r)),
			}

			if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
				attrs = append(attrs, slog.String(logx.FieldTraceID, traceID.String()))
			}

			ctx = contextx.WithLogger(ctx, base.With(attrs...))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-Ip"); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
