package middlewarex

import (
	"net/http"

	"housing_price/pkg/contextx"
	"housing_price/pkg/httpx"
)

// TraceID reuses a well-formed incoming X-Trace-Id or starts a new one, and
// echoes it on the response.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, ok := contextx.ParseTraceID(r.Header.Get(httpx.HeaderTraceID))
		if !ok {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(httpx.HeaderTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
