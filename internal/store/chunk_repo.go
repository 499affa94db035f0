package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

// ChunkRepo provides methods for chunk operations.
// It implements the ChunkStore interface.
type ChunkRepo struct {
	db *sql.DB
}

// NewChunkRepo creates a new ChunkRepo.
func NewChunkRepo(db *sql.DB) *ChunkRepo {
	return &ChunkRepo{db: db}
}

// InsertBatch inserts chunks inside one transaction.
func (r *ChunkRepo) InsertBatch(ctx context.Context, recs []*ChunkRecord) error {
	if len(recs) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO chunks (id, source_id, section_id, section_path, order_index, text,
			page_start, page_end, keywords, score_hints, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range recs {
		path, err := marshalStrings(rec.SectionPath)
		if err != nil {
			return err
		}
		keywords, err := marshalStrings(rec.Keywords)
		if err != nil {
			return err
		}
		hints, err := marshalHints(rec.Hints)
		if err != nil {
			return err
		}
		sectionID := sql.NullString{String: rec.SectionID, Valid: rec.SectionID != ""}
		if _, err := stmt.ExecContext(ctx, rec.ID, rec.SourceID, sectionID, path,
			rec.OrderIndex, rec.Text, rec.PageStart, rec.PageEnd, keywords, hints, rec.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert chunk %d: %w", rec.OrderIndex, err)
		}
	}
	return tx.Commit()
}

// ListBySource returns chunks ordered by order_index.
func (r *ChunkRepo) ListBySource(ctx context.Context, sourceID string) ([]ChunkRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source_id, section_id, section_path, order_index, text,
			page_start, page_end, keywords, score_hints, created_at
		 FROM chunks WHERE source_id = ? ORDER BY order_index`,
		sourceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var chunks []ChunkRecord
	for rows.Next() {
		var rec ChunkRecord
		var sectionID sql.NullString
		var path, keywords, hints string
		if err := rows.Scan(&rec.ID, &rec.SourceID, &sectionID, &path, &rec.OrderIndex,
			&rec.Text, &rec.PageStart, &rec.PageEnd, &keywords, &hints, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		rec.SectionID = sectionID.String
		if err := unmarshalStrings(path, &rec.SectionPath); err != nil {
			return nil, err
		}
		if err := unmarshalStrings(keywords, &rec.Keywords); err != nil {
			return nil, err
		}
		if err := unmarshalHints(hints, &rec.Hints); err != nil {
			return nil, err
		}
		chunks = append(chunks, rec)
	}
	return chunks, rows.Err()
}

func (r *ChunkRepo) CountBySource(ctx context.Context, sourceID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM chunks WHERE source_id = ?", sourceID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count chunks: %w", err)
	}
	return n, nil
}

func (r *ChunkRepo) DeleteBySource(ctx context.Context, sourceID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM chunks WHERE source_id = ?", sourceID)
	if err != nil {
		return fmt.Errorf("failed to delete chunks: %w", err)
	}
	return nil
}

func marshalHints(h rulebook.ScoreHints) (string, error) {
	if h.Empty() {
		return "{}", nil
	}
	b, err := json.Marshal(h)
	if err != nil {
		return "", fmt.Errorf("failed to marshal score hints: %w", err)
	}
	return string(b), nil
}

func unmarshalHints(s string, out *rulebook.ScoreHints) error {
	if s == "" || s == "{}" {
		return nil
	}
	if err := json.Unmarshal([]byte(s), out); err != nil {
		return fmt.Errorf("failed to unmarshal score hints: %w", err)
	}
	return nil
}
