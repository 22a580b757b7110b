package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/httprate"
)

// keyByClient rate limits by X-Client-Id when present and by IP otherwise.
func keyByClient(r *http.Request) (string, error) {
	if clientID := strings.TrimSpace(r.Header.Get("X-Client-Id")); clientID != "" {
		return "client:" + clientID, nil
	}
	return httprate.KeyByIP(r)
}
