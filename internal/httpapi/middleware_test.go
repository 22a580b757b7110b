package httpapi

import (
	"net/http"
	"testing"
)

func TestKeyByClient(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Client-Id", "client-123")

	key, err := keyByClient(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "client:client-123" {
		t.Fatalf("unexpected key: %q", key)
	}
}

func TestKeyByClientFallsBackToIP(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	key, err := keyByClient(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key == "" || key == "client:" {
		t.Fatalf("expected an ip key, got %q", key)
	}
}
