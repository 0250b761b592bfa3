package log

import "context"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the request id. Loggers attach
// it as the request_id field.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
