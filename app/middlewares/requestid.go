package middlewares

import (
	"context"
	"net/http"

	"github.com/Rakhulsr/go-shoppinglist/app/web"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen caps ids supplied by clients.
const maxRequestIDLen = 128

type contextKey string

const reqIDKey contextKey = "req_id"

// RequestID tags the request context with the caller's X-Request-Id, or a
// fresh uuid when there is none, and sets the same value on the response.
func RequestID() web.Middleware {
	return func(handler web.Handler) web.Handler {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			id := requestID(r)
			w.Header().Set(RequestIDHeader, id)
			return handler(context.WithValue(ctx, reqIDKey, id), w, r)
		}
	}
}

func requestID(r *http.Request) string {
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		return uuid.NewString()
	}
	if len(id) > maxRequestIDLen {
		return id[:maxRequestIDLen]
	}
	return id
}

func ContextRequestID(ctx context.Context) string {
	id, _ := ctx.Value(reqIDKey).(string)
	return id
}
