package contextx

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/xid"
)

type TraceID string

type contextKeyTraceID struct{}

var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`) //nolint:gochecknoglobals

func (t TraceID) String() string {
	return string(t)
}

func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

// ParseTraceID accepts caller-supplied ids that are safe to echo into logs
// and headers.
func ParseTraceID(s string) (TraceID, bool) {
	if !traceIDPattern.MatchString(s) {
		return "", false
	}

	return TraceID(s), true
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
