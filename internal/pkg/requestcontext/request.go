package requestcontext

import (
	"context"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// ImportBatchKey is the context key for the upload_count of a running import
	ImportBatchKey ContextKey = "import_batch"
)

// WithRequestID returns a copy of ctx carrying the request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// WithImportBatch tags ctx with the batch number of the import it belongs to
func WithImportBatch(ctx context.Context, batch int) context.Context {
	return context.WithValue(ctx, ImportBatchKey, batch)
}

// GetImportBatch returns the import batch number and whether one is set
func GetImportBatch(ctx context.Context) (int, bool) {
	batch, ok := ctx.Value(ImportBatchKey).(int)
	return batch, ok
}
