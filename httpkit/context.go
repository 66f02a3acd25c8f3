package httpkit

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestIDFrom returns the request id on the context if present
func RequestIDFrom(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
