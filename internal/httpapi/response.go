package httpapi

import (
	"encoding/json"
	"net/http"
)

type problem struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// respond writes body as JSON. Responses describe the live environment, so
// none of them may be cached.
func respond(w http.ResponseWriter, status int, body any) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondProblem(w http.ResponseWriter, status int, message string) {
	respond(w, status, problem{Status: status, Error: message})
}

func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
