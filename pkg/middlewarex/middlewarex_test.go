package middlewarex_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"housing_price/pkg/contextx"
	"housing_price/pkg/logx"
	"housing_price/pkg/middlewarex"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf //nolint:exhaustruct
}

func TestTraceID(t *testing.T) {
	testCases := []struct {
		name    string
		traceID string
		keep    bool
	}{
		{name: "Propagated", traceID: "trace-123", keep: true},
		{name: "Generated"},
		{name: "Rejected", traceID: "bad id\r\nX-Injected: 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var seen contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				traceID, err := contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				seen = traceID
			}))

			r := httptest.NewRequest(http.MethodGet, "/v1/form", http.NoBody)
			if tc.traceID != "" {
				r.Header.Set("X-Trace-Id", tc.traceID)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			rq.NotEmpty(seen)
			rq.Equal(seen.String(), w.Header().Get("X-Trace-Id"))

			if tc.keep {
				rq.Equal(tc.traceID, seen.String())
			} else {
				rq.NotEqual(tc.traceID, seen.String())
			}
		})
	}
}

func TestLogger(t *testing.T) {
	rq := require.New(t)

	base, buf := newBufferLogger()

	h := middlewarex.TraceID(middlewarex.Logger(base)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logger, err := contextx.LoggerFromContext(r.Context())
		rq.NoError(err)

		logger.Info("inside")
	})))

	r := httptest.NewRequest(http.MethodPost, "/v1/estimates", http.NoBody)
	r.Header.Set("X-Trace-Id", "trace-abc")
	r.RemoteAddr = "10.0.0.7:5555"

	h.ServeHTTP(httptest.NewRecorder(), r)

	line := buf.String()
	rq.Contains(line, `"trace-id":"trace-abc"`)
	rq.Contains(line, `"url":"/v1/estimates"`)
	rq.Contains(line, `"http-method":"POST"`)
	rq.Contains(line, `"ip":"10.0.0.7"`)
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.Contains(w.Body.String(), `"code":"InternalServerError"`)
}

func TestRequestResponseLogging(t *testing.T) {
	rq := require.New(t)

	base, buf := newBufferLogger()
	masker := logx.NewSensitiveDataMasker()

	h := middlewarex.Logger(base)(
		middlewarex.RequestLogging(masker, 1024)(
			middlewarex.ResponseLogging(masker, 1024)(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusCreated)
					w.Write([]byte(`{"token":"abc"}`)) //nolint:errcheck
				}),
			),
		),
	)

	body := `{"median_income":3,"password":"hunter2"}`
	r := httptest.NewRequest(http.MethodPost, "/v1/estimates", strings.NewReader(body))

	h.ServeHTTP(httptest.NewRecorder(), r)

	logs := buf.String()
	rq.Contains(logs, logx.FieldHTTPRequest)
	rq.Contains(logs, logx.FieldHTTPResponse)
	rq.Contains(logs, `median_income`)
	rq.NotContains(logs, "hunter2")
	rq.NotContains(logs, `abc\"`)
	rq.Contains(logs, `"response-status":201`)
}
