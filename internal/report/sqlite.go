package report

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sitegather/sitegather/internal/crawler"
	// SQLite database driver (CGO-free)
	_ "modernc.org/sqlite"
)

// SQLiteWriter persists a result collection to a SQLite database
type SQLiteWriter struct {
	db *sql.DB
}

// NewSQLiteWriter opens (or creates) the database at dbPath and
// initializes the report schema.
func NewSQLiteWriter(dbPath string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection prevents lock conflicts
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	w := &SQLiteWriter{db: db}
	if err := w.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return w, nil
}

func (w *SQLiteWriter) initSchema() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 30000",
	}

	for _, pragma := range pragmas {
		if _, err := w.db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	if _, err := w.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Save writes the whole result collection in one transaction. Positions
// record visitation order so the breadth-first ordering survives export.
func (w *SQLiteWriter) Save(results []crawler.PageRecord) error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	pageStmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO pages (position, url, title, content, status_code, link_count, crawled_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare page statement: %w", err)
	}
	defer func() { _ = pageStmt.Close() }()

	linkStmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO links (source_url, target_url, position)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare link statement: %w", err)
	}
	defer func() { _ = linkStmt.Close() }()

	now := time.Now().UTC()
	for i := range results {
		rec := &results[i]
		if _, err := pageStmt.Exec(i, rec.URL, rec.Title, rec.Content, rec.Status, len(rec.Links), now); err != nil {
			return fmt.Errorf("failed to insert page %s: %w", rec.URL, err)
		}

		for j, target := range rec.Links {
			if _, err := linkStmt.Exec(rec.URL, target, j); err != nil {
				return fmt.Errorf("failed to insert link %s -> %s: %w", rec.URL, target, err)
			}
		}
	}

	return tx.Commit()
}

// PageCount returns the number of stored page rows
func (w *SQLiteWriter) PageCount() (int, error) {
	var count int
	if err := w.db.QueryRow("SELECT COUNT(*) FROM pages").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return count, nil
}

// Close closes the database connection
func (w *SQLiteWriter) Close() error {
	return w.db.Close()
}
