package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hetulpatel/athletemon/internal/hashutil"
)

const (
	defaultSQLitePath = "data/seed.db"
)

// SQLiteStore keeps documents as JSON rows in a local SQLite file. It stands
// in for Firestore when working offline.
type SQLiteStore struct {
	path string
	db   *sql.DB
	now  func() time.Time
}

// Document is a stored row.
type Document struct {
	Collection string
	ID         string
	Data       json.RawMessage
	Hash       string
	CreatedAt  string
	UpdatedAt  string
}

// CollectionCount is the number of documents in one collection path.
type CollectionCount struct {
	Collection string
	Count      int
}

// OpenSQLite creates (if needed) and opens the database at path and ensures
// the documents table exists.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		path = defaultSQLitePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := ensureWAL(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	s := &SQLiteStore{path: path, db: db, now: time.Now}
	if err := s.CreateTables(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func ensureWAL(db *sql.DB) error {
	const (
		maxAttempts = 5
		delay       = 200 * time.Millisecond
	)
	for i := 0; i < maxAttempts; i++ {
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			if strings.Contains(err.Error(), "database is locked") {
				time.Sleep(delay)
				continue
			}
			return err
		}
		return nil
	}
	return fmt.Errorf("database is locked after retries")
}

// Path returns the path backing the store.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the DB.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const documentsSchemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	doc_id TEXT NOT NULL,
	data_json TEXT NOT NULL,
	data_hash TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (collection, doc_id)
);
CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents(collection);
`

// CreateTables ensures the documents table exists.
func (s *SQLiteStore) CreateTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, documentsSchemaSQL)
	return err
}

// DropTables removes the documents table.
func (s *SQLiteStore) DropTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS documents;`)
	return err
}

// ClearTables deletes every document.
func (s *SQLiteStore) ClearTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents;`)
	return err
}

const upsertDocumentSQL = `
INSERT INTO documents (collection, doc_id, data_json, data_hash, created_at, updated_at)
VALUES (?,?,?,?,?,?)
ON CONFLICT(collection, doc_id) DO UPDATE SET
	data_json=excluded.data_json,
	data_hash=excluded.data_hash,
	updated_at=excluded.updated_at;
`

const insertDocumentSQL = `
INSERT INTO documents (collection, doc_id, data_json, data_hash, created_at, updated_at)
VALUES (?,?,?,?,?,?);
`

// Set inserts or replaces collection/id.
func (s *SQLiteStore) Set(ctx context.Context, collection, id string, doc any) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.exec(ctx, upsertDocumentSQL, collection, id, doc); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Add inserts doc under a new random id.
func (s *SQLiteStore) Add(ctx context.Context, collection string, doc any) (string, error) {
	if err := validateCollection(collection); err != nil {
		return "", err
	}
	id := uuid.NewString()
	if err := s.exec(ctx, insertDocumentSQL, collection, id, doc); err != nil {
		return "", fmt.Errorf("add to %s: %w", collection, err)
	}
	return id, nil
}

func (s *SQLiteStore) exec(ctx context.Context, query, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	ts := s.now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx, query, collection, id, string(data), hashutil.HashBytes(data), ts, ts)
	return err
}

// Get decodes collection/id into out. It reports false if the document does not exist.
func (s *SQLiteStore) Get(ctx context.Context, collection, id string, out any) (bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data_json FROM documents WHERE collection = ? AND doc_id = ?`, collection, id,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return true, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return true, nil
}

// Count returns the number of documents directly in collection.
func (s *SQLiteStore) Count(ctx context.Context, collection string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents WHERE collection = ?`, collection).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

// Collections lists every collection path with its document count.
func (s *SQLiteStore) Collections(ctx context.Context) ([]CollectionCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT collection, COUNT(*) FROM documents GROUP BY collection ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var out []CollectionCount
	for rows.Next() {
		var c CollectionCount
		if err := rows.Scan(&c.Collection, &c.Count); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns up to limit documents of collection, newest first. limit <= 0 means all.
func (s *SQLiteStore) List(ctx context.Context, collection string, limit int) ([]Document, error) {
	query := `SELECT collection, doc_id, data_json, data_hash, created_at, updated_at
		FROM documents WHERE collection = ? ORDER BY updated_at DESC, doc_id`
	args := []any{collection}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var d Document
		var data string
		if err := rows.Scan(&d.Collection, &d.ID, &data, &d.Hash, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.Data = json.RawMessage(data)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
