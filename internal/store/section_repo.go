package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// SectionRepo provides methods for section operations.
// It implements the SectionStore interface.
type SectionRepo struct {
	db *sql.DB
}

// NewSectionRepo creates a new SectionRepo.
func NewSectionRepo(db *sql.DB) *SectionRepo {
	return &SectionRepo{db: db}
}

// InsertBatch inserts sections inside one transaction so a failed ingest
// never leaves a partial outline behind.
func (r *SectionRepo) InsertBatch(ctx context.Context, recs []*SectionRecord) error {
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
		"INSERT INTO sections (id, source_id, title, section_path, page_start, page_end, text, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range recs {
		path, err := marshalStrings(rec.SectionPath)
		if err != nil {
			return err
		}
		text := sql.NullString{String: rec.Text, Valid: rec.Text != ""}
		if _, err := stmt.ExecContext(ctx, rec.ID, rec.SourceID, rec.Title, path,
			rec.PageStart, rec.PageEnd, text, rec.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert section: %w", err)
		}
	}
	return tx.Commit()
}

// ListBySource returns sections in detection order (insertion order is
// preserved via created_at plus rowid tiebreak).
func (r *SectionRepo) ListBySource(ctx context.Context, sourceID string) ([]SectionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, source_id, title, section_path, page_start, page_end, text, created_at FROM sections WHERE source_id = ? ORDER BY rowid",
		sourceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var secs []SectionRecord
	for rows.Next() {
		var rec SectionRecord
		var path string
		var text sql.NullString
		if err := rows.Scan(&rec.ID, &rec.SourceID, &rec.Title, &path,
			&rec.PageStart, &rec.PageEnd, &text, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		if err := unmarshalStrings(path, &rec.SectionPath); err != nil {
			return nil, err
		}
		rec.Text = text.String
		secs = append(secs, rec)
	}
	return secs, rows.Err()
}

func (r *SectionRepo) DeleteBySource(ctx context.Context, sourceID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sections WHERE source_id = ?", sourceID)
	if err != nil {
		return fmt.Errorf("failed to delete sections: %w", err)
	}
	return nil
}

func marshalStrings(ss []string) (string, error) {
	if len(ss) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(ss)
	if err != nil {
		return "", fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

func unmarshalStrings(s string, out *[]string) error {
	if s == "" || s == "[]" {
		*out = nil
		return nil
	}
	if err := json.Unmarshal([]byte(s), out); err != nil {
		return fmt.Errorf("failed to unmarshal string list: %w", err)
	}
	return nil
}
