// Package api provides the HTTP API server and handlers for the
// showcase application: the public storefront surface and the
// owner-facing catalog API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/showcaseapp/showcase-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    *store.Store
	services *Services
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(store *store.Store, services *Services, logger *slog.Logger) *Server {
	s := &Server{
		store:    store,
		services: services,
		router:   chi.NewRouter(),
		logger:   logger,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("Showcase API", "1.0.0")
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack. Storefront pages are
// embedded cross-origin, so CORS stays permissive on reads.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Owner-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	s.router.Use(s.visitorCookie)
	s.router.Use(ownerHeader)
}

// setupRoutes configures all HTTP routes. Typed operations go through
// huma; the storefront endpoints (cookie handling, redirects) stay on
// plain chi handlers.
func (s *Server) setupRoutes() {
	s.registerHealthRoutes()
	s.registerCatalogRoutes()
	s.registerFavoritesRoutes()
	s.registerSearchRoutes()

	// Public storefront.
	s.router.Get("/view/{slug}", s.handleViewBySlug)
	s.router.Get("/view/id/{id}", s.handleViewByID)
	s.router.Get("/view/{slug}/items/{itemID}", s.handleViewItem)
	s.router.Get("/go/{id}/{action}", s.handleCTARedirect)
	s.router.Post("/api/v1/catalogs/{id}/engagement", s.handleTrackEngagement)
}
