package ports

import (
	"context"
	"time"
)

// ReadStatusRepository persists per-(project, user) acknowledgment times.
type ReadStatusRepository interface {
	// Upsert atomically creates or overwrites the single row keyed by
	// (projectID, userEmail). Concurrent calls for the same key must never
	// produce duplicate rows; that guarantee lives at the storage boundary
	// (unique index plus an upsert primitive), not in application locking.
	Upsert(ctx context.Context, projectID, userEmail string, at time.Time) error
	// DeleteByProject removes all acknowledgment rows for a project,
	// invoked when the project itself is deleted.
	DeleteByProject(ctx context.Context, projectID string) error
}
