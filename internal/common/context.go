package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeySyncRunID contextKey = "sync_run_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithSyncRunID adds a sync run ID to the context
func WithSyncRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ContextKeySyncRunID, runID)
}

// SyncRunIDFromContext extracts the sync run ID from context
func SyncRunIDFromContext(ctx context.Context) string {
	if runID, ok := ctx.Value(ContextKeySyncRunID).(string); ok {
		return runID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
