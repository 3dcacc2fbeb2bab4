package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Rakhulsr/go-shoppinglist/app/services"
	"github.com/Rakhulsr/go-shoppinglist/app/utils/validate"
	"github.com/Rakhulsr/go-shoppinglist/app/web"
	"github.com/Rakhulsr/go-shoppinglist/app/weberr"
)

// serviceErr attaches the HTTP response matching a service error.
func serviceErr(err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return weberr.NotFound(err)
	case errors.Is(err, services.ErrValidation):
		return weberr.BadRequest(err)
	default:
		return weberr.InternalError(err)
	}
}

// decode reads a JSON body into val and runs its validate tags.
func decode(w http.ResponseWriter, r *http.Request, val interface{}) error {
	if err := web.Decode(w, r, val); err != nil {
		return weberr.BadRequest(fmt.Errorf("malformed request body: %w", err))
	}
	if err := validate.Check(val); err != nil {
		return weberr.BadRequest(err)
	}
	return nil
}
