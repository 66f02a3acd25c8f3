package httpkit

import (
	"context"
	"net/http"
)

type ctxKey uint8

const wildcardKey ctxKey = iota

// WithWildcard stores the matched remainder of a "/*" pattern on the context.
// Adapters call this; handlers read it back through Wildcard
func WithWildcard(ctx context.Context, rest string) context.Context {
	return context.WithValue(ctx, wildcardKey, rest)
}

// Wildcard returns the path remainder matched by a "/*" route, or "" when the
// request did not come through a wildcard pattern
func Wildcard(r *http.Request) string {
	if v, ok := r.Context().Value(wildcardKey).(string); ok {
		return v
	}
	return ""
}
