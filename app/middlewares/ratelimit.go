package middlewares

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/Rakhulsr/go-shoppinglist/app/utils/ratelimit"
	"github.com/Rakhulsr/go-shoppinglist/app/web"
	"github.com/Rakhulsr/go-shoppinglist/app/weberr"
)

// RateLimit rejects requests from a client address once its bucket is empty.
func RateLimit(lim *ratelimit.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			client := clientIP(r)
			if !lim.Check(client) {
				return weberr.TooManyRequests(fmt.Errorf("client %s exceeded the request rate", client))
			}
			return handler(ctx, w, r)
		}
		return h
	}
	return m
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
