package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snap Snapshot) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO snapshots (run_id, schema_version, generations, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			schema_version = excluded.schema_version,
			generations = excluded.generations,
			payload = excluded.payload
	`, snap.RunID, snap.SchemaVersion, snap.GenerationsCompleted, payload)
	return err
}

func (s *SQLiteStore) GetSnapshot(ctx context.Context, runID string) (Snapshot, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Snapshot{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE run_id = ?`, runID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, err
	}

	snap, err := DecodeSnapshot(payload)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("decode snapshot %s: %w", runID, err)
	}
	return snap, true, nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			run_id TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			generations INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
	`)
	return err
}
