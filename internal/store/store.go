package store

import (
	"context"
	"errors"
	"time"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// SourceRecord is one ingested rulebook.
type SourceRecord struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Filename  string    `json:"filename"`
	PageCount int       `json:"page_count"`
	CreatedAt time.Time `json:"created_at"`
}

// SectionRecord is a persisted Section. ID and CreatedAt are assigned by
// the store layer; the pipeline fills SourceID before persisting.
type SectionRecord struct {
	ID          string    `json:"id"`
	SourceID    string    `json:"source_id"`
	Title       string    `json:"title"`
	SectionPath []string  `json:"section_path"`
	PageStart   int       `json:"page_start"`
	PageEnd     int       `json:"page_end"`
	Text        string    `json:"text,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChunkRecord is a persisted Chunk, the unit the rule-lookup feature
// retrieves.
type ChunkRecord struct {
	ID          string              `json:"id"`
	SourceID    string              `json:"source_id"`
	SectionID   string              `json:"section_id,omitempty"`
	SectionPath []string            `json:"section_path,omitempty"`
	OrderIndex  int                 `json:"order_index"`
	Text        string              `json:"text"`
	PageStart   int                 `json:"page_start"`
	PageEnd     int                 `json:"page_end"`
	Keywords    []string            `json:"keywords,omitempty"`
	Hints       rulebook.ScoreHints `json:"score_hints,omitzero"`
	CreatedAt   time.Time           `json:"created_at"`
}

// SourceStore manages rulebook source records.
type SourceStore interface {
	Insert(ctx context.Context, src *SourceRecord) error
	GetByID(ctx context.Context, id string) (*SourceRecord, error)
	List(ctx context.Context) ([]SourceRecord, error)
	Delete(ctx context.Context, id string) error
}

// SectionStore manages persisted sections.
type SectionStore interface {
	InsertBatch(ctx context.Context, recs []*SectionRecord) error
	// ListBySource returns sections in detection order.
	ListBySource(ctx context.Context, sourceID string) ([]SectionRecord, error)
	DeleteBySource(ctx context.Context, sourceID string) error
}

// ChunkStore manages persisted chunks.
type ChunkStore interface {
	InsertBatch(ctx context.Context, recs []*ChunkRecord) error
	// ListBySource returns chunks ordered by order_index.
	ListBySource(ctx context.Context, sourceID string) ([]ChunkRecord, error)
	CountBySource(ctx context.Context, sourceID string) (int, error)
	DeleteBySource(ctx context.Context, sourceID string) error
}
