package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type warningResponse struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type reportResponse struct {
	ID       string            `json:"id"`
	Path     string            `json:"path"`
	Keys     []string          `json:"keys"`
	Warnings []warningResponse `json:"warnings"`
}

type keyResponse struct {
	Key string `json:"key"`
	Set bool   `json:"set"`
}

func (a *API) handleReport(w http.ResponseWriter, r *http.Request) {
	if a.report == nil {
		respondProblem(w, http.StatusServiceUnavailable, "no report")
		return
	}

	resp := reportResponse{
		ID:       a.report.ID,
		Path:     a.report.Path,
		Keys:     a.report.Keys(),
		Warnings: make([]warningResponse, 0, len(a.report.Warnings)),
	}
	for _, warning := range a.report.Warnings {
		resp.Warnings = append(resp.Warnings, warningResponse{Line: warning.Line, Message: warning.Error()})
	}
	respond(w, http.StatusOK, resp)
}

func (a *API) handleEnvKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if a.report == nil || !a.loaded(key) {
		respondProblem(w, http.StatusNotFound, "key not loaded")
		return
	}

	_, set := a.env.Lookup(key)
	a.logger.Debug("env key checked",
		slog.String("key", key),
		slog.Bool("set", set),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	respond(w, http.StatusOK, keyResponse{Key: key, Set: set})
}

func (a *API) loaded(key string) bool {
	for _, assignment := range a.report.Applied {
		if assignment.Key == key {
			return true
		}
	}
	return false
}
