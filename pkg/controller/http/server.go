package http

import (
	"net/http"

	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
	authUC AuthUseCase
}

type Options func(*Server)

// WithAuth overrides the authentication use case taken from the use cases
func WithAuth(authUC AuthUseCase) Options {
	return func(s *Server) {
		s.authUC = authUC
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
		authUC: uc.Auth,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authSignupHandler(s.authUC))
			r.Post("/login", authLoginHandler(s.authUC))
			r.With(authMiddleware(s.authUC)).Get("/me", authMeHandler(s.authUC))
		})

		r.Get("/schema", schemaHandler(uc))

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", pagesListHandler(uc.Page))
			r.Get("/{pageID}", pageGetHandler(uc.Page))
			r.With(authMiddleware(s.authUC)).Post("/", pageSaveHandler(uc.Page))
		})

		r.Post("/events/{eventID}/register", registerHandler(uc.Registration))
		r.With(authMiddleware(s.authUC)).Get("/events/{eventID}/registrations", registrationsListHandler(uc.Registration))
		r.With(authMiddleware(s.authUC)).Get("/registrations/export/{eventID}", registrationsExportHandler(uc.Registration))

		r.With(authMiddleware(s.authUC)).Post("/ai-agent", agentHandler(uc.Agent))
		r.With(authMiddleware(s.authUC)).Post("/upload", uploadHandler(uc.Upload))
		r.Get("/uploads/{filename}", uploadServeHandler(uc.Upload))
		r.With(authMiddleware(s.authUC)).Post("/seed", seedHandler(uc.Seed))

		// Generic resource routes, registered last so the fixed paths above win
		res := &resourceHandler{uc: uc.Resource, authUC: s.authUC}
		r.Route("/{resource}", func(r chi.Router) {
			r.Get("/", res.list)
			r.Get("/{key}", res.get)
			r.With(authMiddleware(s.authUC)).Post("/", res.create)
			r.With(authMiddleware(s.authUC)).Put("/{key}", res.update)
			r.With(authMiddleware(s.authUC)).Delete("/{key}", res.delete)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
