package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleIngestStats(w http.ResponseWriter, r *http.Request) {
	stats := s.orchestrator.Stats()
	if stats == nil {
		jsonError(w, "ingest stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"stats":       stats.Snapshot(),
	})
}
