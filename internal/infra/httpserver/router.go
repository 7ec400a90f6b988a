package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalyses "github.com/clauseguard/clauseguard/internal/application/analyses"
	domain "github.com/clauseguard/clauseguard/internal/domain/analysis"
	"github.com/clauseguard/clauseguard/internal/middleware"
)

const apiVersion = "1.0.0"

type Router struct {
	analysesSvc *appanalyses.Service
}

// validationError marks errors that should map to 400 before the pipeline runs.
type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }

func NewRouter(analysesSvc *appanalyses.Service, allowedOrigins []string, healthCheckers map[string]middleware.HealthChecker) http.Handler {
	r := &Router{analysesSvc: analysesSvc}
	mux := chi.NewRouter()

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	mux.Get("/", r.handleRoot)
	mux.Get("/health", middleware.HealthHandler(healthCheckers))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/api", func(rt chi.Router) {
		rt.Get("/", r.handleAPIInfo)
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Get("/analyses", r.wrap(r.handleList))
		rt.Get("/analyses/latest", r.wrap(r.handleLatest))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var ve *validationError
			if errors.As(err, &ve) {
				http.Error(w, ve.Error(), http.StatusBadRequest)
				return
			}
			var fe *domain.FetchError
			if errors.As(err, &fe) {
				http.Error(w, fe.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, fmt.Sprintf("analysis failed: %v", err), http.StatusInternalServerError)
		}
	}
}

// GET /
func (r *Router) handleRoot(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, map[string]any{
		"message": "ClauseGuard API is running",
		"status":  "healthy",
		"version": apiVersion,
		"endpoints": map[string]string{
			"health":   "/health",
			"api_info": "/api/",
			"analyze":  "/api/analyze",
			"metrics":  "/metrics",
		},
	})
}

// GET /api/
func (r *Router) handleAPIInfo(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, map[string]any{
		"message":     "ClauseGuard API - Protecting you from hidden risks",
		"description": "API for analyzing Terms of Service and Privacy Policies",
		"version":     apiVersion,
	})
}

// POST /api/analyze
// Body: {"url": "<absolute http(s) URL>"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return &validationError{msg: "invalid request body: " + err.Error()}
	}

	body.URL = middleware.SanitizeString(body.URL)
	if err := middleware.ValidateURL(body.URL); err != nil {
		return &validationError{msg: err.Error()}
	}

	a, err := r.analysesSvc.Analyze(req.Context(), body.URL)
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}
	middleware.IncrementAnalyses()

	writeJSON(w, a)
	return nil
}

// GET /api/analyses?page=&page_size=
func (r *Router) handleList(w http.ResponseWriter, req *http.Request) error {
	page, _ := strconv.Atoi(req.URL.Query().Get("page"))
	size, _ := strconv.Atoi(req.URL.Query().Get("page_size"))

	list, err := r.analysesSvc.List(req.Context(), page, middleware.ValidatePageSize(size))
	if err != nil {
		return err
	}
	writeJSON(w, list)
	return nil
}

// GET /api/analyses/latest?limit=20
func (r *Router) handleLatest(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))

	list, err := r.analysesSvc.Latest(req.Context(), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domain.Analysis{}
	}
	writeJSON(w, list)
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
