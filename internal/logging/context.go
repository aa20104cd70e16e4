package logging

import (
	"context"
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	traceIDKey  contextKey = "trace_id"
	fileSinkKey contextKey = "file_sink"
)

// TraceIDField is the log field carrying the invocation trace ID.
const TraceIDField = "trace_id"

//nolint:gochecknoglobals // ulid.Monotonic is not safe for concurrent use; guarded by entropyMu.
var (
	entropy   = ulid.Monotonic(rand.Reader, 0)
	entropyMu sync.Mutex
)

// NewTraceID returns a fresh ULID string.
func NewTraceID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey).(string)
	return id
}

// GetOrGenerateTraceID returns the trace ID in ctx, generating one if absent.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewTraceID()
}

// ContextWithFileSink records whether the context logger writes to a file.
func ContextWithFileSink(ctx context.Context, usingFile bool) context.Context {
	return context.WithValue(ctx, fileSinkKey, usingFile)
}

// WritesToFile reports whether the context logger writes to a file rather
// than the terminal.
func WritesToFile(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	usingFile, _ := ctx.Value(fileSinkKey).(bool)
	return usingFile
}

// FromContext returns the logger attached to ctx, tagged with the trace ID
// when one is present. Without an attached logger it returns a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		nop := zerolog.Nop()
		return &nop
	}
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		return logger
	}
	if id := TraceIDFromContext(ctx); id != "" {
		tagged := logger.With().Str(TraceIDField, id).Logger()
		return &tagged
	}
	return logger
}
