// Package server exposes the generation and export pipeline over HTTP
// for the web front end. All state lives in the in-memory session
// store; every preview and export re-normalizes the raw text.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/smartmcq/mcqgen/internal/core"
)

// Server bundles the HTTP handlers with their collaborators.
type Server struct {
	auth      *AuthService
	store     *Store
	generator *core.Generator
	maxUpload int64
}

// Option tweaks Server construction.
type Option func(*Server)

// WithMaxUpload overrides the upload size cap (bytes).
func WithMaxUpload(n int64) Option {
	return func(s *Server) { s.maxUpload = n }
}

func New(auth *AuthService, generator *core.Generator, opts ...Option) *Server {
	s := &Server{
		auth:      auth,
		store:     NewStore(),
		generator: generator,
		maxUpload: 32 << 20,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Routes assembles the router: a public auth endpoint, everything else
// behind the bearer middleware.
func (s *Server) Routes(corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(90 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Post("/api/auth", s.handleAuth)

	r.Group(func(r chi.Router) {
		r.Use(s.auth.Middleware)
		r.Post("/api/generate", s.handleGenerate)
		r.Get("/api/mcqs", s.handleGetMCQs)
		r.Put("/api/mcqs", s.handlePutMCQs)
		r.Get("/api/preview", s.handlePreview)
		r.Get("/api/export/csv", s.handleExportCSV)
		r.Get("/api/export/pdf", s.handleExportPDF)
		r.Post("/api/upload", s.handleUpload)
	})

	return r
}
