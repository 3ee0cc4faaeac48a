package repository

import (
	"context"
	"time"

	"meeting-task-extractor/internal/model"
)

// Repository stores user accounts.
type Repository interface {
	// Create returns ErrDuplicateUsername when the username exists.
	Create(ctx context.Context, opt CreateOptions) (model.User, error)
	// GetOne returns a zero User (ID == "") when nothing matches.
	GetOne(ctx context.Context, opt GetOneOptions) (model.User, error)
}

// SessionRepository remembers revoked session ids until their tokens expire.
type SessionRepository interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
