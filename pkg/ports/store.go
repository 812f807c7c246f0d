package ports

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// SnapshotStore persists per-user session snapshots for introspection.
// Implementations must be safe for concurrent use. Load returns
// domain.ErrSessionNotFound when no snapshot exists for the user.
type SnapshotStore interface {
	Save(ctx context.Context, snap domain.SessionSnapshot) error
	Load(ctx context.Context, userID string) (domain.SessionSnapshot, error)
	List(ctx context.Context) ([]domain.SessionSnapshot, error)
	Delete(ctx context.Context, userID string) error
}
