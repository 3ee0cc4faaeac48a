// Package memory keeps revoked sessions in process, for single-instance deployments without Redis.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"meeting-task-extractor/internal/user/repository"
)

const defaultSize = 100000

type sessionRepository struct {
	revoked *expirable.LRU[string, struct{}]
}

// NewSessionRepository remembers revocations for maxTTL, which should be the token lifetime.
func NewSessionRepository(maxTTL time.Duration) repository.SessionRepository {
	return &sessionRepository{
		revoked: expirable.NewLRU[string, struct{}](defaultSize, nil, maxTTL),
	}
}

func (r *sessionRepository) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	r.revoked.Add(repository.SessionKey(sessionID), struct{}{})
	return nil
}

func (r *sessionRepository) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	return r.revoked.Contains(repository.SessionKey(sessionID)), nil
}
