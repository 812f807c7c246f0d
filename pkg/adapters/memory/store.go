// Package memory provides the in-memory snapshot store.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]domain.SessionSnapshot
}

// NewStore creates a new in-memory snapshot store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.SessionSnapshot),
	}
}

// Save records the snapshot, replacing any previous one for the user.
func (s *Store) Save(ctx context.Context, snap domain.SessionSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[snap.UserID] = snap
	return nil
}

// Load retrieves the snapshot for a user.
func (s *Store) Load(ctx context.Context, userID string) (domain.SessionSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[userID]
	if !ok {
		return domain.SessionSnapshot{}, domain.ErrSessionNotFound
	}
	return snap, nil
}

// List returns all recorded snapshots.
func (s *Store) List(ctx context.Context) ([]domain.SessionSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snaps := make([]domain.SessionSnapshot, 0, len(s.data))
	for _, snap := range s.data {
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// Delete removes the snapshot for a user.
func (s *Store) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return nil
}
