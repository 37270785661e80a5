package utils

import (
	"context"
	"math/rand"
)

func generateRandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))] //nolint:gosec
	}
	return string(b)
}

// GenerateTraceID generates a random trace ID.
func GenerateTraceID() string {
	return generateRandomString(traceIDLen)
}

// WithTraceID returns a copy of ctx carrying a new trace ID, unless ctx already has one.
func WithTraceID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(CtxTraceID).(string); ok {
		return ctx
	}
	return context.WithValue(ctx, CtxTraceID, GenerateTraceID())
}

// TraceIDFromContext returns the trace ID stored in ctx, or an empty string.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(CtxTraceID).(string)
	return id
}
