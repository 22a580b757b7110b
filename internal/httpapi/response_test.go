package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespond(t *testing.T) {
	rec := httptest.NewRecorder()

	respond(rec, http.StatusAccepted, keyResponse{Key: "PORT", Set: true})

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("expected cache-control no-store, got %q", cc)
	}

	var decoded keyResponse
	if err := json.NewDecoder(rec.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if decoded.Key != "PORT" || !decoded.Set {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}

func TestRespondProblem(t *testing.T) {
	rec := httptest.NewRecorder()

	respondProblem(rec, http.StatusNotFound, "key not loaded")

	var resp problem
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Status != http.StatusNotFound || resp.Error != "key not loaded" {
		t.Fatalf("unexpected problem: %+v", resp)
	}
}

func TestRespondText(t *testing.T) {
	rec := httptest.NewRecorder()

	respondText(rec, http.StatusOK, "ok")

	if rec.Body.String() != "ok" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content-type: %q", ct)
	}
}
