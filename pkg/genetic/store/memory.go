package store

import (
	"context"
	"errors"
	"sync"
)

type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshots == nil {
		s.snapshots = make(map[string][]byte)
	}
	return nil
}

// SaveSnapshot stores the encoded snapshot so later changes to s do not leak in.
func (s *MemoryStore) SaveSnapshot(_ context.Context, snap Snapshot) error {
	payload, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshots == nil {
		return errors.New("store is not initialized")
	}
	s.snapshots[snap.RunID] = payload
	return nil
}

func (s *MemoryStore) GetSnapshot(_ context.Context, runID string) (Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshots == nil {
		return Snapshot{}, false, errors.New("store is not initialized")
	}
	payload, ok := s.snapshots[runID]
	if !ok {
		return Snapshot{}, false, nil
	}
	snap, err := DecodeSnapshot(payload)
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
