package httpx

// HeaderTraceID carries the trace id between our services.
const HeaderTraceID = "X-Trace-Id"

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithTraceHeader forwards the context trace id to the upstream in the named
// header, so both sides log the same id.
func WithTraceHeader(header string) Option {
	return func(rt *LoggingRoundTripper) {
		rt.traceHeader = header
	}
}
