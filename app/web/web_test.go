package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespond(t *testing.T) {
	w := httptest.NewRecorder()
	if err := Respond(context.Background(), w, map[string]string{"name": "Bread & Butter"}, http.StatusOK); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), `"Bread & Butter"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestRespondNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	if err := Respond(context.Background(), w, map[string]string{"x": "y"}, http.StatusNoContent); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
	}
}

func TestCreated(t *testing.T) {
	w := httptest.NewRecorder()
	if err := Created(context.Background(), w, "/api/product/1", struct{}{}); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusCreated || w.Header().Get("Location") != "/api/product/1" {
		t.Fatalf("unexpected response %d %v", w.Code, w.Header())
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	if err := Decode(httptest.NewRecorder(), r, &v); err == nil {
		t.Fatal("expected unknown field to be rejected")
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
	if err := Decode(httptest.NewRecorder(), r, &v); err != nil || v.Name != "a" {
		t.Fatalf("decode failed: %v %+v", err, v)
	}
}
