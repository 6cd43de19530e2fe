package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dgallion1/aidemo/internal/config"
	"github.com/dgallion1/aidemo/internal/metrics"
	"github.com/dgallion1/aidemo/internal/qa"
)

// Server is the HTTP API server for the AI feature demos.
type Server struct {
	router   chi.Router
	qa       *qa.Service
	latency  *metrics.LatencyBoard
	gatherer prometheus.Gatherer
	log      zerolog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(svc *qa.Service, latency *metrics.LatencyBoard, gatherer prometheus.Gatherer, log zerolog.Logger, cfg config.Config) *Server {
	s := &Server{
		qa:       svc,
		latency:  latency,
		gatherer: gatherer,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Get("/features", s.handleFeatures)
		r.Get("/nav", s.handleNav)

		r.Get("/qa/document", s.handleDocument)
		r.Post("/qa/ask", s.handleAsk)

		r.Get("/function-calling/schema", s.handleCreditSchema)
		r.Post("/function-calling/sql", s.handleSQL)
		r.Post("/function-calling/credit-score", s.handleCreditScore)

		r.Get("/stats/latency", s.handleLatencyStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
