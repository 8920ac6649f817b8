package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/utils/safe"
)

// Server represents the HTTP server
type Server struct {
	router    *chi.Mux
	workflows interfaces.WorkflowUseCases
	catalog   interfaces.CatalogUseCases
}

// Options is a functional option for Server
type Options func(*Server)

// WithWorkflowUseCases sets the workflow use cases
func WithWorkflowUseCases(uc interfaces.WorkflowUseCases) Options {
	return func(s *Server) {
		s.workflows = uc
	}
}

// WithCatalogUseCases sets the catalog use cases
func WithCatalogUseCases(uc interfaces.CatalogUseCases) Options {
	return func(s *Server) {
		s.catalog = uc
	}
}

// New creates a new HTTP server. The catalog endpoints follow a two-call
// convention: a fuzzy search listing ranked candidates, then a strict fetch
// that only accepts the exact identifier from a search result.
func New(opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Apply middleware
	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	// Register routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/agents", searchAgentsHandler(s.catalog))
		r.Get("/agents/{agent_id}", getAgentHandler(s.catalog))

		r.Route("/mcp/servers", func(r chi.Router) {
			r.Get("/", searchServersHandler(s.catalog))
			r.Get("/{name}", getServerHandler(s.catalog))
			r.Get("/{name}/requirements", getServerRequirementsHandler(s.catalog))
		})

		r.Get("/workflows", listWorkflowsHandler(s.workflows))
		r.Get("/runs", listRunsHandler(s.workflows))
		r.Get("/runs/{run_id}", getRunHandler(s.workflows))
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
