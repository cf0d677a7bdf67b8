package store

import (
	"context"
	"fmt"
)

// Store persists run snapshots keyed by run ID.
type Store interface {
	Init(ctx context.Context) error
	SaveSnapshot(ctx context.Context, s Snapshot) error
	GetSnapshot(ctx context.Context, runID string) (Snapshot, bool, error)
	Close() error
}

// New returns the store backend named kind.
func New(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}
