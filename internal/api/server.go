package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ProbablyMaybeNo/campaign-console/internal/config"
	"github.com/ProbablyMaybeNo/campaign-console/internal/pipeline"
	"github.com/ProbablyMaybeNo/campaign-console/internal/store"
)

// Server is the HTTP API server for campaign-console.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	sources      store.SourceStore
	sections     store.SectionStore
	chunks       store.ChunkStore
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, sources store.SourceStore, sections store.SectionStore, chunks store.ChunkStore, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		sources:      sources,
		sections:     sections,
		chunks:       chunks,
		log:          log,
		cfg:          cfg,
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

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/rulebooks", s.handleIngest)
		r.Post("/api/rulebooks/batch", s.handleBatchIngest)
		r.Get("/api/ingest/{jobID}/status", s.handleIngestStatus)
		r.Get("/api/stats/ingest", s.handleIngestStats)

		r.Get("/api/rulebooks", s.handleListRulebooks)
		r.Get("/api/rulebooks/{sourceID}/sections", s.handleListSections)
		r.Get("/api/rulebooks/{sourceID}/chunks", s.handleListChunks)
		r.Delete("/api/rulebooks/{sourceID}", s.handleDeleteRulebook)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
