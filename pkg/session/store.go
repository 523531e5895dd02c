package session

import (
	"context"
	"time"
)

// Store persists detached session snapshots.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores data under id until expiresAt, replacing any
	// previous entry.
	Save(ctx context.Context, id string, data []byte, expiresAt time.Time) error

	// Load returns (nil, nil) when id is unknown or expired.
	Load(ctx context.Context, id string) ([]byte, error)

	// Delete does not fail for unknown ids.
	Delete(ctx context.Context, id string) error

	// Close releases the backend. Later calls return ErrStoreClosed.
	Close() error
}

// ErrStoreClosed is returned by operations on a closed store.
type ErrStoreClosed struct{}

func (ErrStoreClosed) Error() string {
	return "session store is closed"
}
