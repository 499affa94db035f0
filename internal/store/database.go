package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	// DSN parameters apply to every pooled connection; a plain PRAGMA
	// would only configure the connection it happens to run on.
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the required tables. Idempotent.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS sources (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			filename TEXT NOT NULL,
			page_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS sections (
			id TEXT PRIMARY KEY,
			source_id TEXT NOT NULL,
			title TEXT NOT NULL,
			section_path TEXT NOT NULL,
			page_start INTEGER NOT NULL,
			page_end INTEGER NOT NULL,
			text TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (source_id) REFERENCES sources(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS chunks (
			id TEXT PRIMARY KEY,
			source_id TEXT NOT NULL,
			section_id TEXT,
			section_path TEXT,
			order_index INTEGER NOT NULL,
			text TEXT NOT NULL,
			page_start INTEGER NOT NULL,
			page_end INTEGER NOT NULL,
			keywords TEXT,
			score_hints TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (source_id) REFERENCES sources(id) ON DELETE CASCADE,
			UNIQUE (source_id, order_index)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_chunks_source ON chunks(source_id, order_index);`,
		`CREATE INDEX IF NOT EXISTS idx_sections_source ON sections(source_id);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
