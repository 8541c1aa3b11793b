package ports

import (
	"context"
	"time"
)

// ReadStateService records per-(project, user) acknowledgment timestamps.
type ReadStateService interface {
	// Acknowledge marks the project as seen by the user as of now and
	// returns the recorded timestamp. The project must exist
	// (ErrProjectNotFound otherwise — an explicit error, unlike the
	// guard's silent revoke, because the caller named the project id).
	// Repeated calls update the same row; they never duplicate it and the
	// second call never errors.
	Acknowledge(ctx context.Context, projectID, userEmail string) (time.Time, error)
}
