package inkwell

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore is an alternative RecordStore backed by SQLite. It keeps the
// same observable contract as JSONStore (upsert by slug, last write wins)
// but closes the read-modify-write race between concurrent writers.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path, ensures the data
// directory exists, and creates the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL so readers don't block the writer; busy_timeout so concurrent
	// upserts wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    date TEXT NOT NULL,
    author TEXT NOT NULL,
    image TEXT NOT NULL,
    content TEXT NOT NULL
);
`)
	return err
}

// LoadAll returns every uploaded post ordered by date descending.
func (s *SQLiteStore) LoadAll() ([]PostRecord, error) {
	rows, err := s.db.Query(`SELECT slug, title, description, date, author, image, content FROM posts ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PostRecord
	for rows.Next() {
		var r PostRecord
		if err := rows.Scan(&r.Slug, &r.Title, &r.Description, &r.Date, &r.Author, &r.Image, &r.Content); err != nil {
			return nil, err
		}
		r.Uploaded = true
		records = append(records, r)
	}
	return records, rows.Err()
}

// Upsert inserts or replaces the record for its slug.
func (s *SQLiteStore) Upsert(r PostRecord) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO posts (slug, title, description, date, author, image, content) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Slug, r.Title, r.Description, r.Date, r.Author, r.Image, r.Content)
	return err
}
