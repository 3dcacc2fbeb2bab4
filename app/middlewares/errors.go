package middlewares

import (
	"context"
	"net/http"

	"github.com/Rakhulsr/go-shoppinglist/app/web"
	"github.com/Rakhulsr/go-shoppinglist/app/weberr"
	"github.com/sirupsen/logrus"
)

// Errors logs a handler error and renders the response attached to it, or a
// generic 500 when none is attached.
func Errors(log logrus.FieldLogger) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			err := handler(ctx, w, r)
			if err == nil {
				return nil
			}

			fields := logrus.Fields{
				"req_id":  ContextRequestID(ctx),
				"message": err.Error(),
			}
			if f, ok := weberr.Fields(err); ok {
				for k, v := range f {
					fields["field."+k] = v
				}
			}

			body, code, ok := weberr.Response(err)
			if !ok {
				body = &weberr.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}
				code = http.StatusInternalServerError
			}

			entry := log.WithFields(fields).WithField("statuscode", code)
			if code >= http.StatusInternalServerError {
				entry.Error("ERROR")
			} else {
				entry.Warn("request failed")
			}

			return web.Respond(ctx, w, body, code)
		}
		return h
	}
	return m
}
