// Package server implements Vitrine's HTTP API.
//
// The API renders built-in objects to rich representations, persists each
// rendered bundle in the store, and serves bundles back by ID:
//
//	POST   /v1/render        render an object, store and return the bundle
//	GET    /v1/bundles       list recent bundles
//	GET    /v1/bundles/{id}  fetch one bundle
//	DELETE /v1/bundles/{id}  remove one bundle
//	GET    /v1/kinds         list known kinds and registered renderers
//	GET    /healthz          liveness probe
//
// Binary payloads travel base64-encoded inside JSON, which falls out of
// encoding/json's []byte handling.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vitrine-dev/vitrine/pkg/engine"
	"github.com/vitrine-dev/vitrine/pkg/store"
)

// Server wires the engine and the bundle store behind a chi router.
type Server struct {
	runner *engine.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a server. A nil store falls back to an in-memory store and a
// nil logger to the default logger.
func New(runner *engine.Runner, st store.Store, logger *log.Logger) *Server {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, store: st, logger: logger}
}

// Router builds the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/kinds", s.handleKinds)
		r.Get("/bundles", s.handleListBundles)
		r.Get("/bundles/{id}", s.handleGetBundle)
		r.Delete("/bundles/{id}", s.handleDeleteBundle)
	})
	return r
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// logRequests logs one line per request with status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
