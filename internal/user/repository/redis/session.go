package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"meeting-task-extractor/internal/user/repository"
	"meeting-task-extractor/pkg/log"
)

// Client is the subset of goredis.Cmdable the session store uses.
type Client interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Exists(ctx context.Context, keys ...string) *goredis.IntCmd
}

type sessionRepository struct {
	rdb Client
	l   log.Logger
}

// NewSessionRepository stores revoked session ids in Redis with the token's remaining lifetime.
func NewSessionRepository(rdb Client, l log.Logger) repository.SessionRepository {
	if rdb == nil {
		panic("user/repository/redis: client is required")
	}
	return &sessionRepository{rdb: rdb, l: l}
}

func (r *sessionRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/redis.%s", method)
}

func (r *sessionRepository) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.rdb.Set(ctx, repository.SessionKey(sessionID), "1", ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Revoke"), err)
		return repository.ErrFailedToRevoke
	}
	return nil
}

func (r *sessionRepository) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, repository.SessionKey(sessionID)).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IsRevoked"), err)
		return false, repository.ErrFailedToCheck
	}
	return n > 0, nil
}
