package repository

import "errors"

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrFailedToInsert    = errors.New("failed to insert user")
	ErrFailedToGet       = errors.New("failed to get user")
	ErrFailedToRevoke    = errors.New("failed to revoke session")
	ErrFailedToCheck     = errors.New("failed to check session")
)

// SessionKey is the storage key of a revoked session.
func SessionKey(sessionID string) string {
	return "session:revoked:" + sessionID
}
