// Package server exposes stored agency records over HTTP for review
// tooling.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/store"
)

// New returns the records API router.
func New(st store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	s := &server{store: st}
	r.Get("/health", s.health)
	r.Get("/agencies", s.listAgencies)
	r.Get("/agencies/{name}", s.getAgency)
	r.Get("/agencies/{name}/warnings", s.listWarnings)
	return r
}

type server struct {
	store store.Store
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) listAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := s.store.ListAgencies(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if agencies == nil {
		agencies = []model.Agency{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"agencies": agencies, "count": len(agencies)})
}

func (s *server) getAgency(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	agency, err := s.store.GetAgency(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	if agency == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "agency not found"})
		return
	}
	writeJSON(w, http.StatusOK, agency)
}

func (s *server) listWarnings(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	warnings, err := s.store.ListWarnings(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"warnings": warnings, "count": len(warnings)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	zap.L().Error("request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
