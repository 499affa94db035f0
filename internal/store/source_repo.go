package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SourceRepo provides methods for rulebook source operations.
// It implements the SourceStore interface.
type SourceRepo struct {
	db *sql.DB
}

// NewSourceRepo creates a new SourceRepo.
func NewSourceRepo(db *sql.DB) *SourceRepo {
	return &SourceRepo{db: db}
}

func (r *SourceRepo) Insert(ctx context.Context, src *SourceRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sources (id, title, filename, page_count, created_at) VALUES (?, ?, ?, ?, ?)",
		src.ID, src.Title, src.Filename, src.PageCount, src.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert source: %w", err)
	}
	return nil
}

func (r *SourceRepo) GetByID(ctx context.Context, id string) (*SourceRecord, error) {
	var src SourceRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT id, title, filename, page_count, created_at FROM sources WHERE id = ?", id,
	).Scan(&src.ID, &src.Title, &src.Filename, &src.PageCount, &src.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get source: %w", err)
	}
	return &src, nil
}

func (r *SourceRepo) List(ctx context.Context) ([]SourceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, filename, page_count, created_at FROM sources ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var sources []SourceRecord
	for rows.Next() {
		var src SourceRecord
		if err := rows.Scan(&src.ID, &src.Title, &src.Filename, &src.PageCount, &src.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

func (r *SourceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete source: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
