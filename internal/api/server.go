package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/catalog"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/config"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/search"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/stats"
)

// Server is the HTTP API for remedy search.
type Server struct {
	router  chi.Router
	engine  *search.Engine
	catalog *catalog.Catalog
	latency *stats.Latency
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(engine *search.Engine, cat *catalog.Catalog, latency *stats.Latency, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		engine:  engine,
		catalog: cat,
		latency: latency,
		log:     log,
		cfg:     cfg,
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

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.SearchAPIKey != "" {
			r.Use(AuthMiddleware(s.cfg.SearchAPIKey))
		}

		r.Post("/search", s.handleSearch)
		r.Get("/api/sources", s.handleSources)
		r.Get("/api/stats/search", s.handleSearchStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
