package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"envloader/internal/dotenv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

type Settings struct {
	RequestLimit  int
	RequestWindow time.Duration
}

// API serves the outcome of a load. Values are never exposed, only keys and
// diagnostics.
type API struct {
	report   *dotenv.Report
	env      dotenv.Environment
	logger   *slog.Logger
	settings Settings
}

func New(report *dotenv.Report, env dotenv.Environment, settings Settings, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	if env == nil {
		env = dotenv.OSEnvironment{}
	}
	if settings.RequestLimit <= 0 {
		settings.RequestLimit = 60
	}
	if settings.RequestWindow <= 0 {
		settings.RequestWindow = time.Minute
	}
	return &API{
		report:   report,
		env:      env,
		logger:   logger,
		settings: settings,
	}
}

func (a *API) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(15 * time.Second))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondText(w, http.StatusOK, "ok")
	})

	router.Group(func(r chi.Router) {
		r.Use(httprate.Limit(a.settings.RequestLimit, a.settings.RequestWindow, httprate.WithKeyFuncs(keyByClient)))
		r.Get("/report", a.handleReport)
		r.Get("/env/{key}", a.handleEnvKey)
	})

	return router
}
