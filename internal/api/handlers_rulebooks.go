package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ProbablyMaybeNo/campaign-console/internal/store"
)

// handleListRulebooks lists all ingested rulebook sources.
func (s *Server) handleListRulebooks(w http.ResponseWriter, r *http.Request) {
	sources, err := s.sources.List(r.Context())
	if err != nil {
		jsonError(w, "failed to list rulebooks: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if sources == nil {
		sources = []store.SourceRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"rulebooks": sources})
}

// handleListSections returns the recovered section outline of a rulebook
// in detection order.
func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	sourceID := chi.URLParam(r, "sourceID")
	if _, err := s.sources.GetByID(r.Context(), sourceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "rulebook not found", http.StatusNotFound)
			return
		}
		jsonError(w, "failed to load rulebook: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sections, err := s.sections.ListBySource(r.Context(), sourceID)
	if err != nil {
		jsonError(w, "failed to list sections: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if sections == nil {
		sections = []store.SectionRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"sections": sections})
}

// handleListChunks returns a rulebook's chunks ordered by order index.
func (s *Server) handleListChunks(w http.ResponseWriter, r *http.Request) {
	sourceID := chi.URLParam(r, "sourceID")
	if _, err := s.sources.GetByID(r.Context(), sourceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "rulebook not found", http.StatusNotFound)
			return
		}
		jsonError(w, "failed to load rulebook: "+err.Error(), http.StatusInternalServerError)
		return
	}

	chunks, err := s.chunks.ListBySource(r.Context(), sourceID)
	if err != nil {
		jsonError(w, "failed to list chunks: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if chunks == nil {
		chunks = []store.ChunkRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"chunks": chunks})
}

// handleDeleteRulebook removes a rulebook and its sections and chunks.
func (s *Server) handleDeleteRulebook(w http.ResponseWriter, r *http.Request) {
	sourceID := chi.URLParam(r, "sourceID")
	ctx := r.Context()

	chunkCount, err := s.chunks.CountBySource(ctx, sourceID)
	if err != nil {
		jsonError(w, "failed to count chunks: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := s.sources.Delete(ctx, sourceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "rulebook not found", http.StatusNotFound)
			return
		}
		jsonError(w, "failed to delete rulebook: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Sections and chunks cascade with the source row; the explicit
	// deletes cover databases migrated without foreign keys enabled.
	_ = s.sections.DeleteBySource(ctx, sourceID)
	_ = s.chunks.DeleteBySource(ctx, sourceID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"source_id":      sourceID,
		"chunks_deleted": chunkCount,
	})
}
