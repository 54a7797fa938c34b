package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"go-chi-calculator/internal/calcapi"
	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/session"
	"go-chi-calculator/internal/web"
)

// Options holds what the router needs beyond its fixed middleware chain.
type Options struct {
	Store       *session.Store
	CORSOrigins []string
}

func NewRouter(opts Options) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", observability.RequestIDHeader},
		ExposedHeaders: []string{observability.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	calcapi.RegisterRoutes(r, calcapi.NewHandler(opts.Store))
	web.RegisterRoutes(r)

	return r
}
