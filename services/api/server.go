package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/repsense/server/pkg/analytics"
	"github.com/repsense/server/pkg/bootstrap"
	"github.com/repsense/server/pkg/infrastructure/sentry"
	"github.com/repsense/server/pkg/recommendation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	svc     *bootstrap.Service
	advisor *recommendation.Advisor
	cfg     analytics.Config
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(svc *bootstrap.Service, advisor *recommendation.Advisor, log *slog.Logger) *Server {
	s := &Server{
		svc:     svc,
		advisor: advisor,
		cfg:     analytics.DefaultConfig(),
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(sentry.Recoverer)

	s.router.Route("/api/v1/users/{userID}", func(r chi.Router) {
		r.Get("/sessions/{sessionID}/analytics", s.handleSessionAnalytics)
		r.Post("/sessions/{sessionID}/recommendation", s.handleRecommendation)
		r.Get("/exercises/{exerciseID}/overload", s.handleOverload)
	})

	s.router.Get("/healthz", s.handleHealthz)
}
