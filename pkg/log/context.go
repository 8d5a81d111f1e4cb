package log

import "context"

const (
	ModeProduction = "production"
	EncodingJSON   = "json"
	FieldRequestID = "request_id"
)

type requestIDKey struct{}

// WithRequestID stores a request id that every log line made with ctx will carry.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID, if any.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
