package weberr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fieldErr map[string]string

func (f fieldErr) Error() string { return "name is a required field" }

func (f fieldErr) Fields() map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range f {
		out[k] = v
	}
	return out
}

func TestNotFound(t *testing.T) {
	sentinel := errors.New("not found")
	err := NotFound(fmt.Errorf("product %w", sentinel))

	if !errors.Is(err, sentinel) {
		t.Fatal("wrapped error lost")
	}

	body, status, ok := Response(err)
	if !ok {
		t.Fatal("expected a response")
	}
	if status != http.StatusNotFound {
		t.Fatalf("status = %d", status)
	}
	if diff := cmp.Diff(&ErrorResponse{Error: "product not found"}, body); diff != "" {
		t.Fatalf("unexpected body (-want +got):\n%s", diff)
	}
}

func TestBadRequestCarriesFields(t *testing.T) {
	err := BadRequest(fmt.Errorf("decoding: %w", fieldErr{"name": "name is a required field"}))

	body, status, ok := Response(err)
	if !ok || status != http.StatusBadRequest {
		t.Fatalf("unexpected response %v %d", ok, status)
	}

	want := &ErrorResponse{
		Error:  "decoding: name is a required field",
		Fields: map[string]interface{}{"name": "name is a required field"},
	}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("unexpected body (-want +got):\n%s", diff)
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	err := InternalError(errors.New("disk on fire"))
	body, status, _ := Response(err)
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d", status)
	}
	if body.Error == "disk on fire" {
		t.Fatal("internal error leaked the cause")
	}
}

func TestNewErrorKeepsStatus(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("health: %w", NewError(cause, "database unavailable", http.StatusServiceUnavailable))

	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RequestError in %v", err)
	}
	if re.Status != http.StatusServiceUnavailable || re.Body.Error != "database unavailable" {
		t.Fatalf("unexpected request error %+v", re)
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause lost")
	}
	if _, ok := Fields(err); ok {
		t.Fatal("plain error should carry no fields")
	}
}

func TestResponseWithoutRequestError(t *testing.T) {
	if _, _, ok := Response(errors.New("plain")); ok {
		t.Fatal("plain error should not produce a response")
	}
}
